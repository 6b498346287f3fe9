package spectrum

type materialKind int

const (
	materialUnset materialKind = iota
	materialSingle
	materialList
)

// Material is the optional caller-supplied label: nothing, one label, or a list
type Material struct {
	kind   materialKind
	label  string
	labels []string
}

// NoMaterial lets the ingester derive labels itself
func NoMaterial() Material { return Material{} }

// SingleMaterial labels a single-spectrum file
func SingleMaterial(label string) Material {
	return Material{kind: materialSingle, label: label}
}

// MaterialList labels a multi-spectrum file, in column order
func MaterialList(labels ...string) Material {
	return Material{kind: materialList, labels: append([]string(nil), labels...)}
}

// IsUnset reports whether no label was supplied
func (m Material) IsUnset() bool { return m.kind == materialUnset }

// Single returns the label when m holds exactly one string
func (m Material) Single() (string, bool) {
	return m.label, m.kind == materialSingle
}

// List returns the labels when m holds a list
func (m Material) List() ([]string, bool) {
	if m.kind != materialList {
		return nil, false
	}
	return append([]string(nil), m.labels...), true
}
