package modelgraph

import (
	"errors"
	"fmt"
)

// IntegrityRule names the graph invariant a write would have violated.
type IntegrityRule string

const (
	MissingEndpoint      IntegrityRule = "missing_endpoint"
	CrossLayerReference  IntegrityRule = "cross_layer_reference"
	DanglingRelationship IntegrityRule = "dangling_relationship"
)

// IntegrityError reports a rejected graph write together with the offending
// ids. Callers reject the whole write; these are data errors, not transient
// conditions.
type IntegrityError struct {
	Rule           IntegrityRule
	RelationshipID int64
	ObjectID       int64
	LayerID        int64
}

func (e *IntegrityError) Error() string {
	switch e.Rule {
	case MissingEndpoint:
		return fmt.Sprintf("integrity violation: endpoint object %d does not exist", e.ObjectID)
	case CrossLayerReference:
		return fmt.Sprintf("integrity violation: object %d belongs to another layer than %d", e.ObjectID, e.LayerID)
	case DanglingRelationship:
		return fmt.Sprintf("integrity violation: relationship %d still references object %d", e.RelationshipID, e.ObjectID)
	default:
		return fmt.Sprintf("integrity violation: %s", e.Rule)
	}
}

// AsIntegrityError unwraps err into an IntegrityError when it is one.
func AsIntegrityError(err error) (*IntegrityError, bool) {
	var ie *IntegrityError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// ErrObjectLayerImmutable is returned when an update tries to move an object
// to a different layer. Moving layers needs an explicit migration, not an
// update.
var ErrObjectLayerImmutable = errors.New("object layer cannot be changed")

// ErrLayerNotEmpty is returned when deleting a layer that still has objects.
var ErrLayerNotEmpty = errors.New("layer still contains objects")
