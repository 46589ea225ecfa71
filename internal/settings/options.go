package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownKey is returned when a key is not one of the dialog's fields.
var ErrUnknownKey = errors.New("unknown settings key")

// Setting keys
const (
	KeyCaptionType        = "caption-type"
	KeyDisplayCaptionFor  = "display-caption-for"
	KeyDisplayNumber      = "display-number"
	KeyGroupWindows       = "group-windows"
	KeyDisplayPinned      = "display-pinned"
	KeyHoverPreview       = "hover-preview"
	KeyPreviewTimeoutShow = "preview-timeout-show"
	KeyPreviewTimeoutHide = "preview-timeout-hide"
	KeyAnimationTime      = "animation-time"
)

// Duration fields are whole milliseconds in this range
const (
	MinDurationMS = 0
	MaxDurationMS = 5000
)

// CaptionType selects what a window button shows as its caption
type CaptionType int

const (
	CaptionName  CaptionType = 0
	CaptionTitle CaptionType = 1
)

func (c CaptionType) String() string {
	switch c {
	case CaptionName:
		return "Name"
	case CaptionTitle:
		return "Title"
	default:
		return "CaptionType(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c is a known variant
func (c CaptionType) Valid() bool {
	return c == CaptionName || c == CaptionTitle
}

// DisplayCaption selects which buttons get a caption
type DisplayCaption int

const (
	DisplayCaptionNone    DisplayCaption = 0
	DisplayCaptionAll     DisplayCaption = 1
	DisplayCaptionRunning DisplayCaption = 2
	DisplayCaptionFocused DisplayCaption = 3
)

func (d DisplayCaption) String() string {
	switch d {
	case DisplayCaptionNone:
		return "None"
	case DisplayCaptionAll:
		return "All"
	case DisplayCaptionRunning:
		return "Running"
	case DisplayCaptionFocused:
		return "Focused"
	default:
		return "DisplayCaption(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is a known variant
func (d DisplayCaption) Valid() bool {
	return d >= DisplayCaptionNone && d <= DisplayCaptionFocused
}

// DisplayNumber selects when the window-count badge is shown
type DisplayNumber int

const (
	DisplayNumberNone  DisplayNumber = 0
	DisplayNumberAll   DisplayNumber = 1
	DisplayNumberSmart DisplayNumber = 2
)

func (d DisplayNumber) String() string {
	switch d {
	case DisplayNumberNone:
		return "None"
	case DisplayNumberAll:
		return "All"
	case DisplayNumberSmart:
		return "Smart"
	default:
		return "DisplayNumber(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is a known variant
func (d DisplayNumber) Valid() bool {
	return d >= DisplayNumberNone && d <= DisplayNumberSmart
}

// GroupWindows selects how windows of one application are grouped
type GroupWindows int

const (
	GroupWindowsNone  GroupWindows = 0
	GroupWindowsAll   GroupWindows = 1
	GroupWindowsSmart GroupWindows = 2
)

func (g GroupWindows) String() string {
	switch g {
	case GroupWindowsNone:
		return "None"
	case GroupWindowsAll:
		return "All"
	case GroupWindowsSmart:
		return "Smart"
	default:
		return "GroupWindows(" + strconv.Itoa(int(g)) + ")"
	}
}

// Valid reports whether g is a known variant
func (g GroupWindows) Valid() bool {
	return g >= GroupWindowsNone && g <= GroupWindowsSmart
}

// FieldKind is the kind of control bound to a setting
type FieldKind int

const (
	FieldChoice FieldKind = iota
	FieldToggle
	FieldDuration
)

// Choice is one entry of a choice field
type Choice struct {
	Code  int
	Label string
}

// Field describes one control of the preferences dialog and the key it
// is bound to.
type Field struct {
	Key         string
	Label       string
	Description string
	Kind        FieldKind
	Choices     []Choice
	Min, Max    int
	Step        int
}

// Fields lists the dialog's bindings in display order.
var Fields = []Field{
	{
		Key:         KeyCaptionType,
		Label:       "Caption",
		Description: "Show the application name or the window title",
		Kind:        FieldChoice,
		Choices: []Choice{
			{int(CaptionName), CaptionName.String()},
			{int(CaptionTitle), CaptionTitle.String()},
		},
	},
	{
		Key:         KeyDisplayCaptionFor,
		Label:       "Display caption for",
		Description: "Which buttons show a caption",
		Kind:        FieldChoice,
		Choices: []Choice{
			{int(DisplayCaptionNone), DisplayCaptionNone.String()},
			{int(DisplayCaptionAll), DisplayCaptionAll.String()},
			{int(DisplayCaptionRunning), DisplayCaptionRunning.String()},
			{int(DisplayCaptionFocused), DisplayCaptionFocused.String()},
		},
	},
	{
		Key:         KeyDisplayNumber,
		Label:       "Display number",
		Description: "When to show the window count badge",
		Kind:        FieldChoice,
		Choices: []Choice{
			{int(DisplayNumberNone), DisplayNumberNone.String()},
			{int(DisplayNumberAll), DisplayNumberAll.String()},
			{int(DisplayNumberSmart), DisplayNumberSmart.String()},
		},
	},
	{
		Key:         KeyGroupWindows,
		Label:       "Group windows",
		Description: "Group windows of the same application",
		Kind:        FieldChoice,
		Choices: []Choice{
			{int(GroupWindowsNone), GroupWindowsNone.String()},
			{int(GroupWindowsAll), GroupWindowsAll.String()},
			{int(GroupWindowsSmart), GroupWindowsSmart.String()},
		},
	},
	{
		Key:         KeyDisplayPinned,
		Label:       "Show pinned apps",
		Description: "Keep pinned applications in the list when not running",
		Kind:        FieldToggle,
	},
	{
		Key:         KeyHoverPreview,
		Label:       "Hover preview",
		Description: "Show a window preview when hovering a button",
		Kind:        FieldToggle,
	},
	{
		Key:         KeyPreviewTimeoutShow,
		Label:       "Preview show delay",
		Description: "Milliseconds before the preview opens",
		Kind:        FieldDuration,
		Min:         MinDurationMS,
		Max:         MaxDurationMS,
		Step:        1,
	},
	{
		Key:         KeyPreviewTimeoutHide,
		Label:       "Preview hide delay",
		Description: "Milliseconds before the preview closes",
		Kind:        FieldDuration,
		Min:         MinDurationMS,
		Max:         MaxDurationMS,
		Step:        1,
	},
	{
		Key:         KeyAnimationTime,
		Label:       "Animation time",
		Description: "Duration of button animations in milliseconds",
		Kind:        FieldDuration,
		Min:         MinDurationMS,
		Max:         MaxDurationMS,
		Step:        1,
	},
}

// LookupField returns the field bound to key
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Clamp limits n to the field's range
func (f Field) Clamp(n int) int {
	if n < f.Min {
		return f.Min
	}
	if n > f.Max {
		return f.Max
	}
	return n
}

// ChoiceIndex returns the position of code in the choice list, or -1
func (f Field) ChoiceIndex(code int) int {
	for i, c := range f.Choices {
		if c.Code == code {
			return i
		}
	}
	return -1
}

// Validate checks that v fits the field's domain
func (f Field) Validate(v Value) error {
	switch f.Kind {
	case FieldToggle:
		if _, ok := v.AsBool(); !ok {
			return fmt.Errorf("%s: expected true or false, got %s", f.Key, v)
		}
	case FieldChoice:
		n, ok := v.AsInt()
		if !ok || f.ChoiceIndex(n) < 0 {
			return fmt.Errorf("%s: %s is not one of %s", f.Key, v, f.choiceList())
		}
	case FieldDuration:
		n, ok := v.AsInt()
		if !ok || n < f.Min || n > f.Max {
			return fmt.Errorf("%s: expected an integer in [%d, %d], got %s", f.Key, f.Min, f.Max, v)
		}
	}
	return nil
}

// Parse reads user input for the field. Choice fields accept a label
// (any case) or a numeric code; toggles accept true/false/on/off.
func (f Field) Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	var v Value
	switch f.Kind {
	case FieldToggle:
		switch strings.ToLower(s) {
		case "true", "on", "yes", "1":
			v = Bool(true)
		case "false", "off", "no", "0":
			v = Bool(false)
		default:
			return Value{}, fmt.Errorf("%s: expected true or false, got %q", f.Key, s)
		}
	case FieldChoice:
		for _, c := range f.Choices {
			if strings.EqualFold(c.Label, s) {
				return Int(c.Code), nil
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %q is not one of %s", f.Key, s, f.choiceList())
		}
		v = Int(n)
	case FieldDuration:
		n, err := strconv.Atoi(strings.TrimSuffix(s, "ms"))
		if err != nil {
			return Value{}, fmt.Errorf("%s: %q is not an integer", f.Key, s)
		}
		v = Int(n)
	}
	if err := f.Validate(v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Format renders v for display
func (f Field) Format(v Value) string {
	switch f.Kind {
	case FieldToggle:
		if b, ok := v.AsBool(); ok {
			if b {
				return "On"
			}
			return "Off"
		}
	case FieldChoice:
		if n, ok := v.AsInt(); ok {
			if i := f.ChoiceIndex(n); i >= 0 {
				return f.Choices[i].Label
			}
		}
	case FieldDuration:
		if n, ok := v.AsInt(); ok {
			return strconv.Itoa(n) + " ms"
		}
	}
	return v.String()
}

func (f Field) choiceList() string {
	labels := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		labels[i] = fmt.Sprintf("%s=%d", c.Label, c.Code)
	}
	return strings.Join(labels, ", ")
}

// Options is a typed view of a settings document
type Options struct {
	CaptionType        CaptionType
	DisplayCaptionFor  DisplayCaption
	DisplayNumber      DisplayNumber
	GroupWindows       GroupWindows
	DisplayPinned      bool
	HoverPreview       bool
	PreviewTimeoutShow time.Duration
	PreviewTimeoutHide time.Duration
	AnimationTime      time.Duration
}

// OptionsFrom decodes and validates every dialog field from doc
func OptionsFrom(doc *Document) (Options, error) {
	var opts Options
	for _, f := range Fields {
		v, ok := doc.Get(f.Key)
		if !ok {
			return Options{}, fmt.Errorf("%s missing from document", f.Key)
		}
		if err := f.Validate(v); err != nil {
			return Options{}, err
		}
		n, _ := v.AsInt()
		b, _ := v.AsBool()
		switch f.Key {
		case KeyCaptionType:
			opts.CaptionType = CaptionType(n)
		case KeyDisplayCaptionFor:
			opts.DisplayCaptionFor = DisplayCaption(n)
		case KeyDisplayNumber:
			opts.DisplayNumber = DisplayNumber(n)
		case KeyGroupWindows:
			opts.GroupWindows = GroupWindows(n)
		case KeyDisplayPinned:
			opts.DisplayPinned = b
		case KeyHoverPreview:
			opts.HoverPreview = b
		case KeyPreviewTimeoutShow:
			opts.PreviewTimeoutShow = time.Duration(n) * time.Millisecond
		case KeyPreviewTimeoutHide:
			opts.PreviewTimeoutHide = time.Duration(n) * time.Millisecond
		case KeyAnimationTime:
			opts.AnimationTime = time.Duration(n) * time.Millisecond
		}
	}
	return opts, nil
}
