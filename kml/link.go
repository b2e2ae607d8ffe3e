package kml

// RefreshMode controls time-based refresh of a linked resource.
type RefreshMode int

const (
	RefreshModeOnChange RefreshMode = iota
	RefreshModeOnInterval
	RefreshModeOnExpire
)

func (m RefreshMode) String() string {
	switch m {
	case RefreshModeOnInterval:
		return "onInterval"
	case RefreshModeOnExpire:
		return "onExpire"
	default:
		return "onChange"
	}
}

// ParseRefreshMode parses the schema text form.
func ParseRefreshMode(s string) (RefreshMode, error) {
	switch s {
	case "onChange":
		return RefreshModeOnChange, nil
	case "onInterval":
		return RefreshModeOnInterval, nil
	case "onExpire":
		return RefreshModeOnExpire, nil
	}
	return 0, enumErr("refreshMode", s)
}

// ViewRefreshMode controls camera-based refresh of a linked resource.
type ViewRefreshMode int

const (
	ViewRefreshModeNever ViewRefreshMode = iota
	ViewRefreshModeOnRequest
	ViewRefreshModeOnStop
	ViewRefreshModeOnRegion
)

func (m ViewRefreshMode) String() string {
	switch m {
	case ViewRefreshModeOnRequest:
		return "onRequest"
	case ViewRefreshModeOnStop:
		return "onStop"
	case ViewRefreshModeOnRegion:
		return "onRegion"
	default:
		return "never"
	}
}

// ParseViewRefreshMode parses the schema text form.
func ParseViewRefreshMode(s string) (ViewRefreshMode, error) {
	switch s {
	case "never":
		return ViewRefreshModeNever, nil
	case "onRequest":
		return ViewRefreshModeOnRequest, nil
	case "onStop":
		return ViewRefreshModeOnStop, nil
	case "onRegion":
		return ViewRefreshModeOnRegion, nil
	}
	return 0, enumErr("viewRefreshMode", s)
}

// Link references a remote or local resource. RefreshMode and
// ViewRefreshMode are optional (nil is absent); RefreshInterval,
// ViewRefreshTime and ViewBoundScale carry hard defaults and are always
// emitted. Use NewLink rather than a struct literal when defaults should
// apply.
type Link struct {
	Href            string // omitted when empty
	RefreshMode     *RefreshMode
	RefreshInterval float64
	ViewRefreshMode *ViewRefreshMode
	ViewRefreshTime float64
	ViewBoundScale  float64
	ViewFormat      string // omitted when empty
	HTTPQuery       string // omitted when empty
	Attrs           map[string]string
}

// NewLink returns a Link with the schema defaults applied.
func NewLink() *Link {
	return &Link{RefreshInterval: 4, ViewRefreshTime: 4, ViewBoundScale: 1}
}

// LinkTypeIcon is the standalone <Icon> element sharing the Link field set.
// It is distinct from the href-only Icon nested in an IconStyle.
type LinkTypeIcon Link

// NewLinkTypeIcon returns a LinkTypeIcon with the schema defaults applied.
func NewLinkTypeIcon() *LinkTypeIcon {
	return (*LinkTypeIcon)(NewLink())
}

// ResourceMap maps model texture paths to replacement paths. Zero aliases
// encode as an empty <ResourceMap></ResourceMap>.
type ResourceMap struct {
	Aliases []Alias
	Attrs   map[string]string
}

// Alias is one targetHref/sourceHref mapping of a ResourceMap.
type Alias struct {
	TargetHref string // omitted when empty
	SourceHref string // omitted when empty
	Attrs      map[string]string
}

func (*Link) node()         {}
func (*LinkTypeIcon) node() {}
func (*ResourceMap) node()  {}
func (*Alias) node()        {}
