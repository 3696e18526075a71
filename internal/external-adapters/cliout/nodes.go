package cliout

import (
	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseNodes decodes the node array printed by `results bfl --format json`
func (p *ResultParser) ParseNodes(line string) []entities.Node {
	if isBlank(line) {
		return nil
	}

	root, err := decodeDocument(line)
	if err != nil {
		p.skip("bfl", line, err)
		return nil
	}

	elems, ok := root.([]any)
	if !ok {
		p.skip("bfl", line, errNotArray)
		return nil
	}

	nodes, err := objects(elems, toNode)
	if err != nil {
		p.skip("bfl", line, err)
		return nil
	}
	return nodes
}

func toNode(o object) (entities.Node, error) {
	var n entities.Node
	var err error

	strs := []struct {
		key string
		dst *string
	}{
		{"id", &n.ID},
		{"name", &n.Name},
		{"method", &n.Method},
		{"domType", &n.DomType},
		{"fileName", &n.FileName},
		{"fullName", &n.FullName},
		{"typeName", &n.TypeName},
		{"definitions", &n.Definitions},
	}
	for _, s := range strs {
		if *s.dst, err = o.str(s.key); err != nil {
			return n, err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"line", &n.Line},
		{"column", &n.Column},
		{"length", &n.Length},
		{"nodeID", &n.NodeID},
		{"methodLine", &n.MethodLine},
	}
	for _, i := range ints {
		if *i.dst, err = o.integer(i.key); err != nil {
			return n, err
		}
	}
	return n, nil
}
