package dungeon

import "errors"

var (
	ErrMapDimensions       = errors.New("map dimensions are not a multiple of the room size")
	ErrMissingLayer        = errors.New("map is missing a required layer")
	ErrOrphanObstacle      = errors.New("obstacle center is not inside any room")
	ErrImmovableOutside    = errors.New("immovable center is outside the room")
	ErrInvalidLocation     = errors.New("location is not inside any room")
	ErrRoomOutOfBounds     = errors.New("room location is outside the dungeon grid")
	ErrRoomExists          = errors.New("room already exists")
	ErrInvalidRoomGeometry = errors.New("room and tile sizes must be positive")
)
