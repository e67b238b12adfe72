package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type refState uint8

const (
	refAbsent refState = iota
	refUnresolved
	refLoaded
)

// Ref is a relationship field in one of three states: absent, an unresolved
// id that needs a fetch, or an entity already loaded in memory. A Ref decoded
// from BSON is always unresolved; a Ref built from an entity in hand is
// loaded and resolves without touching the database.
type Ref[T any] struct {
	state  refState
	id     primitive.ObjectID
	entity *T
}

func AbsentRef[T any]() Ref[T] {
	return Ref[T]{state: refAbsent}
}

func UnresolvedRef[T any](id primitive.ObjectID) Ref[T] {
	return Ref[T]{state: refUnresolved, id: id}
}

func LoadedRef[T any](id primitive.ObjectID, entity *T) Ref[T] {
	return Ref[T]{state: refLoaded, id: id, entity: entity}
}

func (r Ref[T]) IsAbsent() bool {
	return r.state == refAbsent
}

func (r Ref[T]) IsLoaded() bool {
	return r.state == refLoaded
}

// ID returns the target's identity, or the zero ObjectID when absent.
func (r Ref[T]) ID() primitive.ObjectID {
	return r.id
}

// ResolveRef materializes a reference. Loaded refs return their entity with
// no fetch; unresolved refs perform exactly one lookup through find; absent
// refs and missing targets both resolve to nil. find is expected to report a
// missing document as (nil, nil), so no driver error type escapes here.
func ResolveRef[T any](ref Ref[T], find func(id primitive.ObjectID) (*T, error)) (*T, error) {
	switch ref.state {
	case refAbsent:
		return nil, nil
	case refLoaded:
		return ref.entity, nil
	default:
		return find(ref.id)
	}
}

func (r Ref[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.state == refAbsent {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(r.id)
}

func (r *Ref[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		*r = AbsentRef[T]()
		return nil
	}
	var id primitive.ObjectID
	if err := bson.UnmarshalValue(t, data, &id); err != nil {
		return err
	}
	*r = UnresolvedRef[T](id)
	return nil
}

// MarshalJSON emits the target's hex id, never the embedded entity.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.state == refAbsent {
		return []byte("null"), nil
	}
	return json.Marshal(r.id.Hex())
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var hex *string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	if hex == nil {
		*r = AbsentRef[T]()
		return nil
	}
	id, err := primitive.ObjectIDFromHex(*hex)
	if err != nil {
		return err
	}
	*r = UnresolvedRef[T](id)
	return nil
}
