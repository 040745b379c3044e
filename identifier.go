package launcher

import (
	"errors"
	"fmt"
	"strings"
)

// ProjectIdentifier names one project among many sharing the launcher,
// e.g. "dungeon-crawler".
type ProjectIdentifier string

// ParseIdentifier validates s as a project identifier.
// Identifiers are lowercase ASCII words joined by single hyphens. Underscores
// are rejected so the hyphen/underscore transform stays one-to-one.
func ParseIdentifier(s string) (ProjectIdentifier, error) {
	if s == "" {
		return "", errors.New("project identifier is empty")
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return "", fmt.Errorf("project identifier %q starts or ends with a hyphen", s)
	}
	if strings.Contains(s, "--") {
		return "", fmt.Errorf("project identifier %q contains an empty word", s)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return "", fmt.Errorf("project identifier %q contains invalid character %q", s, r)
		}
	}
	return ProjectIdentifier(s), nil
}

// MustParseIdentifier is like ParseIdentifier but panics on error.
// Meant for identifiers baked into a launcher build.
func MustParseIdentifier(s string) ProjectIdentifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ModuleReference locates the application object of a project: the module
// to load and the symbol inside it holding the constructed object.
type ModuleReference struct {
	ModuleName  string
	EntrySymbol string
}

// Resolve maps a project identifier to its module reference. Both the module
// name and the entry symbol are the identifier itself.
func Resolve(id ProjectIdentifier) ModuleReference {
	return ModuleReference{
		ModuleName:  string(id),
		EntrySymbol: string(id),
	}
}

// PackageName returns the underscore form of the module name, suitable for
// native package paths and C symbol prefixes.
func (r ModuleReference) PackageName() string {
	return strings.ReplaceAll(r.ModuleName, "-", "_")
}

// Namespace returns the conventional source namespace of the module.
func (r ModuleReference) Namespace() string {
	return r.ModuleName + ".core"
}

func (r ModuleReference) String() string {
	return r.ModuleName + "/" + r.EntrySymbol
}
