package util

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("GenerateUUID() = %q is not a uuid: %v", id, err)
	}
	if GenerateUUID() == id {
		t.Error("two calls returned the same id")
	}
}
