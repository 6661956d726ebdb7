package data

import "strings"

// CustomProperties holds string-keyed custom properties of a series or a
// point. Keys are matched case-insensitively.
type CustomProperties map[string]string

// Get returns the value of the named property.
func (cp CustomProperties) Get(name string) (string, bool) {
	if cp == nil {
		return "", false
	}
	if v, ok := cp[name]; ok {
		return v, true
	}
	for k, v := range cp {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Set sets the named property.
func (cp CustomProperties) Set(name, value string) {
	for k := range cp {
		if k != name && strings.EqualFold(k, name) {
			delete(cp, k)
		}
	}
	cp[name] = value
}

// Lookup returns the named custom property of point p in series s.
// A property set on the point beats the one set on the series.
func Lookup(s *Series, p *Point, name string) (string, bool) {
	if p != nil {
		if v, ok := p.Props.Get(name); ok {
			return v, true
		}
	}
	if s != nil {
		return s.Props.Get(name)
	}
	return "", false
}
