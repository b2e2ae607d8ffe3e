package kml_test

import (
	"fmt"
	"log"

	"github.com/joshuapare/kmlkit/kml"
)

func ExampleMarshalString() {
	pm := &kml.Placemark{
		Name: "Mount Rainier",
		Geometry: &kml.Point[float64]{
			Coord: kml.NewCoordZ[float64](-121.76, 46.85, 4392),
		},
	}
	out, err := kml.MarshalString(pm)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// <Placemark><name>Mount Rainier</name><Point><extrude>0</extrude><altitudeMode>clampToGround</altitudeMode><coordinates>-121.76,46.85,4392</coordinates></Point></Placemark>
}

func ExampleParse() {
	node, err := kml.Parse("<Point><coordinates>1,1,1</coordinates></Point>")
	if err != nil {
		log.Fatal(err)
	}
	point := node.(*kml.Point[float64])
	fmt.Println(point.Coord.String())
	// Output:
	// 1,1,1
}
