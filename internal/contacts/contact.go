package contacts

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotFound is returned when no contact matches a lookup key
var ErrNotFound = errors.New("contact not found")

// Contact represents one person in the roster
type Contact struct {
	ID           string
	Name         string
	Relation     string
	Phone        string // canonical, handed to the dialer
	DisplayPhone string
	Email        string
	Image        string // remote URI, never fetched here
}

// Initials returns up to two upper-case initials for list avatars
func (c Contact) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// TelURI returns the tel: URI for the canonical phone number
func (c Contact) TelURI() string {
	return "tel:" + c.Phone
}

var roster = []Contact{
	{
		ID:           "1",
		Name:         "Syed",
		Relation:     "Creative Director",
		Phone:        "+15550192834",
		DisplayPhone: "+1 (555) 019-2834",
		Email:        "sarah.j@agency.design",
		Image:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=1887&auto=format&fit=crop",
	},
	{
		ID:           "2",
		Name:         "Hunain",
		Relation:     "Grandson",
		Phone:        "+15550419921",
		DisplayPhone: "+1 (555) 041-9921",
		Email:        "julian.dev@tech.io",
		Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=1887&auto=format&fit=crop",
	},
	{
		ID:           "3",
		Name:         "Aijaz",
		Relation:     "Product Manager",
		Phone:        "+15550911122",
		DisplayPhone: "+1 (555) 091-1122",
		Email:        "eliana.s@startup.com",
		Image:        "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=1770&auto=format&fit=crop",
	},
	{
		ID:           "4",
		Name:         "James Cooper",
		Relation:     "Marketing Lead",
		Phone:        "+15551234567",
		DisplayPhone: "+1 (555) 123-4567",
		Email:        "james.c@market.net",
		Image:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=1887&auto=format&fit=crop",
	},
	{
		ID:           "5",
		Name:         "Mia Wong",
		Relation:     "UX Researcher",
		Phone:        "+15559876543",
		DisplayPhone: "+1 (555) 987-6543",
		Email:        "mia.w@research.lab",
		Image:        "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=1964&auto=format&fit=crop",
	},
}

// Roster returns a copy of the built-in contact list in display order
func Roster() []Contact {
	out := make([]Contact, len(roster))
	copy(out, roster)
	return out
}

// Lookup finds a contact by ID or by case-insensitive name
func Lookup(list []Contact, key string) (Contact, error) {
	key = strings.TrimSpace(key)
	for _, c := range list {
		if c.ID == key {
			return c, nil
		}
	}

	want := lower(key)
	for _, c := range list {
		if lower(c.Name) == want {
			return c, nil
		}
	}

	return Contact{}, fmt.Errorf("%q: %w", key, ErrNotFound)
}
