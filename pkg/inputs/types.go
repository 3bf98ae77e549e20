package inputs

// InputType tags the renderer variant an attribute resolves to. The closed
// set below ships with built-in renderers; Registry.Register is the
// extension point for caller-defined tags.
type InputType string

const (
	TypeString     InputType = "string"
	TypeEmail      InputType = "email"
	TypeSearch     InputType = "search"
	TypeTel        InputType = "tel"
	TypeURL        InputType = "url"
	TypePassword   InputType = "password"
	TypeText       InputType = "text"
	TypeFile       InputType = "file"
	TypeHidden     InputType = "hidden"
	TypeInteger    InputType = "integer"
	TypeDecimal    InputType = "decimal"
	TypeFloat      InputType = "float"
	TypeSelect     InputType = "select"
	TypeRadio      InputType = "radio"
	TypeCheckBoxes InputType = "check_boxes"
	TypeDate       InputType = "date"
	TypeTime       InputType = "time"
	TypeDatetime   InputType = "datetime"
	TypeCountry    InputType = "country"
	TypeTimeZone   InputType = "time_zone"
	TypeBoolean    InputType = "boolean"
)

// Collection reports whether the tag renders from a choice list.
func (t InputType) Collection() bool {
	switch t {
	case TypeSelect, TypeRadio, TypeCheckBoxes, TypeCountry, TypeTimeZone:
		return true
	default:
		return false
	}
}
