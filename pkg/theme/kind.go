package theme

import (
	"fmt"
	"strings"
)

// ComponentKind identifies one discrete unit of terminal output. The set is
// closed: the compositor, the style resolver and the spacing rules all key
// off it, and a Theme must carry a StyleSpec for every kind.
type ComponentKind int

const (
	KindHeader ComponentKind = iota
	KindSection
	KindDivider
	KindInfo
	KindSuccess
	KindWarning
	KindError
	KindText
	KindListItem
	KindKeyValue
	KindTable
	KindPanel
	KindCode
	KindSpinner
	KindProgress
	KindPrompt
	KindSpacer
	KindGroup

	kindCount
)

var kindNames = map[ComponentKind]string{
	KindHeader:   "header",
	KindSection:  "section",
	KindDivider:  "divider",
	KindInfo:     "info",
	KindSuccess:  "success",
	KindWarning:  "warning",
	KindError:    "error",
	KindText:     "text",
	KindListItem: "list_item",
	KindKeyValue: "key_value",
	KindTable:    "table",
	KindPanel:    "panel",
	KindCode:     "code",
	KindSpinner:  "spinner",
	KindProgress: "progress",
	KindPrompt:   "prompt",
	KindSpacer:   "spacer",
	KindGroup:    "group",
}

// String returns the canonical name of the kind, as used in theme files
func (k ComponentKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Valid reports whether k is one of the recognized kinds
func (k ComponentKind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Transient reports whether the kind is an animated, self-erasing component
func (k ComponentKind) Transient() bool {
	return k == KindSpinner || k == KindProgress
}

// Kinds returns every recognized component kind in declaration order
func Kinds() []ComponentKind {
	kinds := make([]ComponentKind, 0, int(kindCount))
	for k := ComponentKind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind parses a theme-file kind name into a ComponentKind
func ParseKind(s string) (ComponentKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown component kind: %q", s)
}
