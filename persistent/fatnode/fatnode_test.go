package fatnode

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/verstree/verstree/persistent"
	"github.com/verstree/verstree/persistent/naive"
)

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	return +1
}

func TestMixedOperations(t *testing.T) {
	tree := New(cmpInt)

	v0 := tree.Insert(8, 3, 10)
	tree.Insert(1)             // v1
	tree.Insert(6)             // v2
	tree.Insert(14, 4)         // v3
	v4 := tree.Insert(7)       // v4
	v5 := tree.Delete(4)       // v5
	tree.Delete(6, 3)          // v6
	v7 := tree.Delete(8)       // v7
	tree.Insert(0)             // v8
	v9 := tree.Insert(2, 5)    // v9
	v10 := tree.Delete(tree.InOrder(v9)...)
	v11 := tree.Insert(1)

	if v0 != 0 || v4 != 4 || v5 != 5 || v7 != 7 || v9 != 9 || v10 != 10 || v11 != 11 {
		t.Fatalf("unexpected version numbering: %d %d %d %d %d %d %d", v0, v4, v5, v7, v9, v10, v11)
	}

	inorders := []struct {
		version persistent.Version
		want    []int
	}{
		{0, []int{3, 8, 10}},
		{4, []int{1, 3, 4, 6, 7, 8, 10, 14}},
		{7, []int{1, 7, 10, 14}},
		{10, nil},
		{11, []int{1}},
	}
	for _, tt := range inorders {
		if got := tree.InOrder(tt.version); !slices.Equal(got, tt.want) {
			t.Errorf("InOrder(%d) = %v, want %v", tt.version, got, tt.want)
		}
	}

	if k, found := tree.Search(4, v4); !found || k != 4 {
		t.Errorf("Search(4, v4) = (%d, %v), want (4, true)", k, found)
	}
	if _, found := tree.Search(4, v5); found {
		t.Error("Search(4, v5) unexpectedly found the deleted key")
	}
	if k, found := tree.Search(4, v4); !found || k != 4 {
		t.Error("Search(4, v4) changed after the deletion at v5")
	}
}

func TestReadsBeforeFirstVersion(t *testing.T) {
	tree := New(cmpInt)
	if _, found := tree.Search(1, 0); found {
		t.Fatal("Search on an empty engine unexpectedly found a key")
	}
	if got := tree.InOrder(0); got != nil {
		t.Fatalf("InOrder on an empty engine = %v", got)
	}

	tree.Insert(5)
	if _, found := tree.Search(5, persistent.None); found {
		t.Fatal("Search at a negative version unexpectedly found a key")
	}
	if got := tree.InOrder(-3); got != nil {
		t.Fatalf("InOrder at a negative version = %v", got)
	}
}

func TestDuplicateInsertKeepsSet(t *testing.T) {
	tree := New(cmpInt)
	tree.Insert(3, 1, 4)
	v := tree.Insert(3)
	if got := tree.InOrder(v); !slices.Equal(got, []int{1, 3, 4}) {
		t.Fatalf("InOrder after duplicate insert = %v", got)
	}
}

func TestDeleteAbsentCreatesNoVersion(t *testing.T) {
	tree := New(cmpInt)
	v := tree.Insert(1, 2)
	if got := tree.Delete(9); got != v {
		t.Fatalf("Delete(9) = version %d, want unchanged %d", got, v)
	}
}

func TestPredecessorSuccessorQueries(t *testing.T) {
	tree := New(cmpInt)
	v0 := tree.Insert(10, 4, 16)
	v1 := tree.Delete(10)

	if k, ok := tree.SearchLE(12, v0); !ok || k != 10 {
		t.Errorf("SearchLE(12, v0) = (%d, %v), want (10, true)", k, ok)
	}
	if k, ok := tree.SearchLE(12, v1); !ok || k != 4 {
		t.Errorf("SearchLE(12, v1) = (%d, %v), want (4, true)", k, ok)
	}
	if k, ok := tree.SearchGT(4, v1); !ok || k != 16 {
		t.Errorf("SearchGT(4, v1) = (%d, %v), want (16, true)", k, ok)
	}
	if _, ok := tree.SearchGT(16, v0); ok {
		t.Error("SearchGT(16, v0) unexpectedly found a key")
	}
}

// Every version of the fat-node engine must agree with the naive
// engine fed the same update batches.
func TestAgainstNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	tree := New(cmpInt)
	oracle := naive.New(cmpInt)

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(3)
		batch := make([]int, n)
		for j := range batch {
			batch[j] = rng.Intn(64)
		}
		present := oracle.InOrder(oracle.LatestVersion())
		if rng.Intn(3) == 0 && len(present) > 0 {
			// ensure the batch hits so that both engines mint
			// exactly one version
			batch[0] = present[rng.Intn(len(present))]
			tree.Delete(batch...)
			oracle.Delete(batch...)
		} else {
			tree.Insert(batch...)
			oracle.Insert(batch...)
		}
		if tree.LatestVersion() != oracle.LatestVersion() {
			t.Fatalf("version drift after %d ops: %d vs %d", i+1, tree.LatestVersion(), oracle.LatestVersion())
		}
	}

	for v := persistent.Version(0); v <= tree.LatestVersion(); v++ {
		got, want := tree.InOrder(v), oracle.InOrder(v)
		if !slices.Equal(got, want) {
			t.Fatalf("InOrder(%d) = %v, oracle has %v", v, got, want)
		}
	}
}
