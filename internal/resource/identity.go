package resource

import (
	"errors"
	"strings"
	"unicode"
)

// Construction fails loudly when a mandatory identity field is absent.
var (
	ErrMissingType  = errors.New("resource: type must not be empty")
	ErrMissingTitle = errors.New("resource: title must not be empty")
)

// Identity is the immutable (type, title) pair that names a resource within a
// given context. It is owned exclusively by its Resource.
type Identity struct {
	typ   string
	title string
}

// NewIdentity validates and constructs an Identity. Both fields are required.
func NewIdentity(typ, title string) (Identity, error) {
	if typ == "" {
		return Identity{}, ErrMissingType
	}
	if title == "" {
		return Identity{}, ErrMissingTitle
	}
	return Identity{typ: typ, title: title}, nil
}

// Type returns the resource type as given at construction, case preserved.
func (id Identity) Type() string { return id.typ }

// Title returns the resource title.
func (id Identity) Title() string { return id.title }

// Ref serializes the Identity into its canonical reference string, e.g.
// `File[/etc/motd]` or `One::Two[title]`. The reference is deterministic and
// is the stable sort/compare key for display purposes.
func (id Identity) Ref() string {
	var sb strings.Builder
	sb.WriteString(CapitalizeType(id.typ))
	sb.WriteByte('[')
	sb.WriteString(id.title)
	sb.WriteByte(']')
	return sb.String()
}

// CapitalizeType upper-cases the leading rune of every `::`-separated segment
// of a type name: "one::two" becomes "One::Two".
func CapitalizeType(typ string) string {
	segs := strings.Split(typ, "::")
	for i, seg := range segs {
		if seg == "" {
			continue
		}
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		segs[i] = string(runes)
	}
	return strings.Join(segs, "::")
}
