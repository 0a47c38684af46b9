package hash

import (
	"testing"
	"time"

	"civistash/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSnapshotHashIgnoresLocalFields(t *testing.T) {
	a := &model.CivitaiModel{
		ModelID:     42,
		Name:        "Landscape Mixer",
		Type:        "Checkpoint",
		CreatorName: "alice",
		Metadata:    `{"id":42}`,
	}
	b := &model.CivitaiModel{
		ModelID:      42,
		Name:         "Landscape Mixer",
		Type:         "Checkpoint",
		CreatorName:  "alice",
		Metadata:     `{"id":42}`,
		SnapshotHash: "stale-hash",
		LastSyncedAt: time.Now(),
		CreateTime:   time.Now(),
		UpdateTime:   time.Now(),
	}

	hashA, err := CalculateSnapshotHash(a)
	assert.NoError(t, err)
	hashB, err := CalculateSnapshotHash(b)
	assert.NoError(t, err)
	assert.Equal(t, hashA, hashB)
}

func TestCalculateSnapshotHashDetectsChanges(t *testing.T) {
	a := &model.ModelVersion{VersionID: 100, ModelID: 42, Name: "v1.0"}
	b := &model.ModelVersion{VersionID: 100, ModelID: 42, Name: "v1.1"}

	hashA, err := CalculateSnapshotHash(a)
	assert.NoError(t, err)
	hashB, err := CalculateSnapshotHash(b)
	assert.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestCalculateSnapshotHashIgnoresTaskTuple(t *testing.T) {
	taskID := "task-1"
	a := &model.ModelFile{FileID: 1000, VersionID: 100, Name: "file.safetensors"}
	b := &model.ModelFile{FileID: 1000, VersionID: 100, Name: "file.safetensors", TaskID: &taskID, Finished: true, Deleted: true}

	hashA, err := CalculateSnapshotHash(a)
	assert.NoError(t, err)
	hashB, err := CalculateSnapshotHash(b)
	assert.NoError(t, err)
	assert.Equal(t, hashA, hashB)
}
