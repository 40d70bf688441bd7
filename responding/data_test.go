package responding

import (
	"testing"
)

func TestDataClone(t *testing.T) {
	original := Data{"a": 1}
	cloned := original.Clone()
	cloned["a"] = 2
	cloned["b"] = 3

	if original["a"] != 1 {
		t.Error("Clone() should not share storage with the original")
	}
	if _, ok := original["b"]; ok {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestDataMergeReserved(t *testing.T) {
	caller := Data{"x": 1, "is_turbo_stream": false}
	merged := caller.MergeReserved(Data{"is_turbo_stream": true, "target": "msg-1"})

	if merged["x"] != 1 {
		t.Errorf("merged[x] = %v, want 1", merged["x"])
	}
	if merged["is_turbo_stream"] != true {
		t.Error("reserved keys should silently win over caller keys")
	}
	if merged["target"] != "msg-1" {
		t.Errorf("merged[target] = %v, want msg-1", merged["target"])
	}
	if caller["is_turbo_stream"] != false {
		t.Error("MergeReserved should not mutate the caller's map")
	}
}

func TestDataMergeReservedNilReceiver(t *testing.T) {
	var caller Data
	merged := caller.MergeReserved(Data{"k": "v"})
	if merged["k"] != "v" {
		t.Errorf("merged[k] = %v, want v", merged["k"])
	}
}
