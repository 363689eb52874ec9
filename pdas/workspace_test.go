// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "testing"

func TestWorkspaceSyncPartitionMarksPinnedAndFree(t *testing.T) {
	w := newWorkspace(7)
	z := []float64{1, 0.3, -1, 0, -1}
	w.syncPartition(z)

	want := []mark{markPinUp, markFree, markPinDown, markFree, markPinDown}
	for i, m := range want {
		if w.partition[i] != m {
			t.Fatalf("partition[%d] = %v, want %v", i, w.partition[i], m)
		}
	}
}

func TestWorkspaceCheckPartitionDetectsDrift(t *testing.T) {
	w := newWorkspace(6)
	z := []float64{1, 0, -1, 0}
	w.syncPartition(z)
	if !w.checkPartition(z) {
		t.Fatal("checkPartition should agree immediately after syncPartition")
	}

	z[0] = 0.5 // drifted away from its pinned mark without resyncing
	if w.checkPartition(z) {
		t.Fatal("checkPartition should detect a partition that no longer matches z")
	}
}
