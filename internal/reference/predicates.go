package reference

import (
	"fmt"

	"github.com/Leganyst/rentlok/internal/model"
)

// RoomInProperty требует, чтобы комната принадлежала объекту propertyID.
func RoomInProperty(propertyID model.ID) Predicate[model.Room] {
	return Predicate[model.Room]{
		Relation: fmt.Sprintf("room does not belong to property %d", propertyID),
		Holds: func(r *model.Room) bool {
			return r.PropertyID == propertyID
		},
	}
}
