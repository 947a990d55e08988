// Package schema declares per-model field and relation descriptors that
// render as SurrealQL path expressions.
//
// A model's schema is declared once as a plain struct of descriptors plus a
// constructor taking the path prefix, then shared read-only:
//
//	type Account struct {
//		Handle          schema.Field
//		Friend          schema.Relation[Account]
//		ManagedProjects schema.Relation[Project]
//	}
//
//	func NewAccount(prefix string) Account {
//		return Account{
//			Handle:          schema.NewField(prefix, "handle"),
//			Friend:          schema.NewRef(prefix, "friend", "Account", NewAccount),
//			ManagedProjects: schema.NewOut(prefix, "managed_projects", "manage", "Project", NewProject),
//		}
//	}
//
//	func (Account) String() string { return "Account" }
//
//	var AccountSchema = NewAccount("")
//
// Descriptors are immutable. Entering a relation builds a fresh copy of the
// target schema carrying the extended prefix, so two call sites composing
// different paths from the same root never interfere. Target construction is
// deferred to the Enter call, which is what lets a schema reference its own
// type without recursing at declaration time.
package schema

// Direction is the traversal direction of a relation.
type Direction int

const (
	// DirectionNone joins path segments with dots, like a plain field.
	DirectionNone Direction = iota
	// DirectionOut renders a forward graph edge, ->edge->Target.
	DirectionOut
	// DirectionIn renders a backward graph edge, <-edge<-Target.
	DirectionIn
)

// Field describes one plain field of a model.
type Field struct {
	prefix string
	name   string
}

// NewField declares a field with the given path prefix and name. The prefix
// is empty for root fields.
func NewField(prefix, name string) Field {
	return Field{prefix: prefix, name: name}
}

// Name returns the bare field name, without any path prefix.
func (f Field) Name() string { return f.name }

// String renders the field's full path, `prefix.name`, or the bare name at
// the root.
func (f Field) String() string {
	if f.prefix == "" {
		return f.name
	}
	return f.prefix + "." + f.name
}

// As renders the field path followed by an alias. The field itself is left
// usable unaliased.
//
//	account.Handle.As("username") // "handle as username"
func (f Field) As(alias string) string {
	return f.String() + " as " + alias
}

// Parameterized renders an equality between the field and a parameter named
// after it, `name = $name`. Used to build WHERE and SET fragments whose
// parameter names follow the field by convention.
func (f Field) Parameterized() string {
	return f.name + " = $" + f.name
}

// Relation describes an edge from a model to the schema of the target model
// M: either a graph-traversal edge (->edge->Target, <-edge<-Target) or a
// plain dotted reference to a nested model, which also covers models
// referencing their own type.
type Relation[M any] struct {
	prefix string
	name   string
	edge   string
	dir    Direction
	target string
	build  func(prefix string) M
}

// NewOut declares a forward relation through the given edge label. The name
// is the local field name and doubles as the default alias; target is the
// target model's name.
func NewOut[M any](prefix, name, edge, target string, build func(prefix string) M) Relation[M] {
	return Relation[M]{prefix: prefix, name: name, edge: edge, dir: DirectionOut, target: target, build: build}
}

// NewIn declares a backward relation through the given edge label.
func NewIn[M any](prefix, name, edge, target string, build func(prefix string) M) Relation[M] {
	return Relation[M]{prefix: prefix, name: name, edge: edge, dir: DirectionIn, target: target, build: build}
}

// NewRef declares a plain reference to another model, rendered like a field
// and traversed with dots. Passing the enclosing model's own constructor
// declares a self-reference.
func NewRef[M any](prefix, name, target string, build func(prefix string) M) Relation[M] {
	return Relation[M]{prefix: prefix, name: name, dir: DirectionNone, target: target, build: build}
}

// Name returns the local field name of the relation.
func (r Relation[M]) Name() string { return r.name }

// String renders the relation's full path: the prefix followed by the
// arrowed edge for graph relations, or a dotted field path for plain
// references.
func (r Relation[M]) String() string {
	switch r.dir {
	case DirectionOut:
		return r.prefix + "->" + r.edge + "->" + r.target
	case DirectionIn:
		return r.prefix + "<-" + r.edge + "<-" + r.target
	default:
		if r.prefix == "" {
			return r.name
		}
		return r.prefix + "." + r.name
	}
}

// As renders the relation path followed by an alias.
//
//	account.ManagedProjects.As("managed_projects")
//	// "->manage->Project as managed_projects"
func (r Relation[M]) As(alias string) string {
	return r.String() + " as " + alias
}

// Parameterized renders an equality against a parameter named after the
// relation's local name, `name = $name`.
func (r Relation[M]) Parameterized() string {
	return r.name + " = $" + r.name
}

// Enter builds the target model's schema with this relation's rendered path
// as the prefix of every descriptor, enabling arbitrarily deep chains:
//
//	account.ManagedProjects.Enter().Name.As("project_names")
//	// "->manage->Project.name as project_names"
func (r Relation[M]) Enter() M {
	return r.build(r.String())
}
