// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later_test

import (
	"testing"

	"code.hybscloud.com/later"
)

// workerExecutor is the concrete context bound to workerTag.
var workerExecutor = &recordingExecutor{}

// workerTag marks computations guaranteed to complete on workerExecutor.
type workerTag struct{}

func (workerTag) TagExecutor() later.Executor { return workerExecutor }

func TestEraseOnProducesTaggedType(t *testing.T) {
	before := workerExecutor.calls.Load()

	var tagged later.Tagged[workerTag, int] = later.EraseOn[workerTag](later.Just(5))
	got := later.Wait(tagged)
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
	if workerExecutor.calls.Load() != before+1 {
		t.Fatal("delivery did not hop to the tag's executor")
	}
}

func TestEraseOnMainProducesMainTag(t *testing.T) {
	var tagged later.Tagged[later.MainTag, string] = later.EraseOnMain(later.Just("hi"))
	got := later.Wait(tagged)
	if got != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestTagNotPreservedBySecondErasure(t *testing.T) {
	tagged := later.EraseOn[workerTag](later.Just(1))

	// Both erasure paths degrade to the untagged type; the assignments
	// are the compile-time assertion that the tag is gone.
	var viaMethod later.Any[int] = tagged.Erase()
	var viaGeneric later.Any[int] = later.Erase[int](tagged)

	if got := later.Wait(viaMethod); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := later.Wait(viaGeneric); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestTaggedStillDispatchesAfterErase(t *testing.T) {
	// Dropping the tag drops the static guarantee, not the dispatch hop.
	before := workerExecutor.calls.Load()
	erased := later.EraseOn[workerTag](later.Just(2)).Erase()
	later.Wait(erased)
	if workerExecutor.calls.Load() != before+1 {
		t.Fatal("erased computation no longer dispatches to the executor")
	}
}

func TestTaggedComposesAsLater(t *testing.T) {
	tagged := later.EraseOn[workerTag](later.Just(3))
	m := later.Map(tagged, func(x int) int { return x * 2 })
	if got := later.Wait(m); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}
