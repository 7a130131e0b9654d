package serve

import (
	"path/filepath"

	"github.com/google/uuid"
)

// trackRegistry hands out stable ids for the served track files, so file
// system paths never appear in URLs.
type trackRegistry struct {
	bySrc map[string]uuid.UUID
	byID  map[uuid.UUID]string
	order []uuid.UUID
}

func newTrackRegistry() *trackRegistry {
	return &trackRegistry{
		bySrc: make(map[string]uuid.UUID),
		byID:  make(map[uuid.UUID]string),
	}
}

func (r *trackRegistry) Add(srcPath string) uuid.UUID {
	var err error
	srcPath, err = filepath.Abs(srcPath)
	if err != nil {
		panic(err)
	}

	if guid, ok := r.bySrc[srcPath]; ok {
		return guid
	}

	guid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}

	r.bySrc[srcPath] = guid
	r.byID[guid] = srcPath
	r.order = append(r.order, guid)

	return guid
}

func (r *trackRegistry) PathFromID(guid uuid.UUID) (string, bool) {
	if src, ok := r.byID[guid]; ok {
		return src, true
	}

	return "", false
}

// IDs returns the registered track ids in registration order.
func (r *trackRegistry) IDs() []uuid.UUID {
	return r.order
}
