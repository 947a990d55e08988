package surgo

// NamedLabel combines a record identifier and its table name into the
// `Table:identifier` label syntax used for node identifiers.
//
//	surgo.NamedLabel("John", "Account") // "Account:John"
func NamedLabel(identifier, table string) string {
	return table + ":" + identifier
}

// Node assembles graph path strings outside of a query builder, one forward
// edge at a time. The zero value starts an anonymous path.
//
//	surgo.Node("Account").With("IS_FRIEND").With("Account:Mark").String()
//	// "Account->IS_FRIEND->Account:Mark"
type Node string

// With appends a forward edge to the given segment.
func (n Node) With(segment string) Node {
	return n + "->" + Node(segment)
}

// If applies then to the node only when condition holds.
//
//	surgo.Node("").
//		With("IS_FRIEND").
//		If(isFriendOfMark, func(n surgo.Node) surgo.Node {
//			return n.With("Account:Mark")
//		})
func (n Node) If(condition bool, then func(Node) Node) Node {
	if !condition {
		return n
	}
	return then(n)
}

// NamedLabel renders the node as an identifier of the given table.
//
//	surgo.Node("John").NamedLabel("Account") // "Account:John"
func (n Node) NamedLabel(table string) string {
	return NamedLabel(string(n), table)
}

func (n Node) String() string {
	return string(n)
}
