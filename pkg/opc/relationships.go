package opc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const relationshipsNS = "http://schemas.openxmlformats.org/package/2006/relationships"

// Target modes for a relationship.
const (
	ModeInternal = "Internal"
	ModeExternal = "External"
)

// Relationship is a directed, part-scoped edge to another part or to an
// external resource. It is owned exclusively by the table of the part that
// declares it.
type Relationship struct {
	ID     string
	Type   string
	Target string
	Mode   string
}

// External reports whether the target lives outside the archive. External
// targets are exempt from resolution.
func (r Relationship) External() bool {
	return r.Mode == ModeExternal
}

// Relationships is the table of outgoing relationships of a single part.
//
// Auto-generated ids have the form rId<N>. The counter is a high-water mark,
// not a free list: it advances past any explicitly supplied numeric id, and
// removing a relationship never makes its id available again within the same
// table instance. A freshly parsed table recomputes the mark from what is
// actually present.
type Relationships struct {
	rels   map[string]Relationship
	order  []string
	nextID int
}

// NewRelationships returns an empty table.
func NewRelationships() *Relationships {
	return &Relationships{
		rels:   make(map[string]Relationship),
		nextID: 1,
	}
}

// Len returns the number of relationships in the table.
func (rs *Relationships) Len() int {
	return len(rs.rels)
}

// Get looks up a relationship by id.
func (rs *Relationships) Get(id string) (Relationship, bool) {
	rel, ok := rs.rels[id]
	return rel, ok
}

// FindByType returns all relationships of the given type, in insertion order.
func (rs *Relationships) FindByType(relType string) []Relationship {
	var out []Relationship
	for _, id := range rs.order {
		if rel := rs.rels[id]; rel.Type == relType {
			out = append(out, rel)
		}
	}
	return out
}

// All returns every relationship in insertion order.
func (rs *Relationships) All() []Relationship {
	out := make([]Relationship, 0, len(rs.order))
	for _, id := range rs.order {
		out = append(out, rs.rels[id])
	}
	return out
}

// Add appends an internal relationship under the next auto-generated id and
// returns that id.
func (rs *Relationships) Add(relType, target string) string {
	return rs.Put(Relationship{Type: relType, Target: target, Mode: ModeInternal})
}

// AddExternal appends an external relationship under the next auto-generated
// id and returns that id.
func (rs *Relationships) AddExternal(relType, target string) string {
	return rs.Put(Relationship{Type: relType, Target: target, Mode: ModeExternal})
}

// Put inserts a relationship, generating an id when rel.ID is empty and
// otherwise honoring the supplied one. The counter is advanced past any
// numeric suffix of the stored id so later auto-generated ids never collide.
// An existing relationship under the same id is replaced in place.
func (rs *Relationships) Put(rel Relationship) string {
	if rel.Mode == "" {
		rel.Mode = ModeInternal
	}
	if rel.ID == "" {
		rel.ID = fmt.Sprintf("rId%d", rs.nextID)
	}

	if _, exists := rs.rels[rel.ID]; !exists {
		rs.order = append(rs.order, rel.ID)
	}
	rs.rels[rel.ID] = rel

	if n, ok := ridNumber(rel.ID); ok && n >= rs.nextID {
		rs.nextID = n + 1
	}
	return rel.ID
}

// Remove deletes a relationship by id. The id is not reissued by this table.
func (rs *Relationships) Remove(id string) {
	if _, ok := rs.rels[id]; !ok {
		return
	}
	delete(rs.rels, id)
	for i, o := range rs.order {
		if o == id {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the table, counter included.
func (rs *Relationships) Clone() *Relationships {
	out := NewRelationships()
	out.nextID = rs.nextID
	for _, rel := range rs.All() {
		out.Put(rel)
	}
	return out
}

// Equal reports whether two tables hold the same relationships, ignoring
// counter state and insertion order.
func (rs *Relationships) Equal(other *Relationships) bool {
	if rs.Len() != other.Len() {
		return false
	}
	for id, rel := range rs.rels {
		o, ok := other.rels[id]
		if !ok || o != rel {
			return false
		}
	}
	return true
}

// MarshalXML serializes the table to a relationships part.
func (rs *Relationships) MarshalXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", relationshipsNS)

	for _, rel := range rs.All() {
		e := root.CreateElement("Relationship")
		e.CreateAttr("Id", rel.ID)
		e.CreateAttr("Type", rel.Type)
		e.CreateAttr("Target", rel.Target)
		if rel.External() {
			e.CreateAttr("TargetMode", ModeExternal)
		}
	}
	return doc.WriteToBytes()
}

// ParseRelationships parses a relationships part. A missing TargetMode means
// internal.
func ParseRelationships(data []byte) (*Relationships, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("malformed relationships part: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "Relationships" {
		return nil, fmt.Errorf("malformed relationships part: missing Relationships root")
	}

	rs := NewRelationships()
	for _, e := range root.SelectElements("Relationship") {
		rs.Put(Relationship{
			ID:     e.SelectAttrValue("Id", ""),
			Type:   e.SelectAttrValue("Type", ""),
			Target: e.SelectAttrValue("Target", ""),
			Mode:   e.SelectAttrValue("TargetMode", ModeInternal),
		})
	}
	return rs, nil
}

func ridNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "rId")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
