package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation([]string{"a", "b"}, 2, true)

	var got []string
	for i := 0; i < 7; i++ {
		got = append(got, a.Frame())
		a.Update()
	}

	want := []string{"a", "a", "a", "b", "b", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
	if !a.Looped {
		t.Error("expected Looped after wrapping")
	}
}

func TestAnimationHoldsLastFrameWithoutLoop(t *testing.T) {
	a := NewAnimation([]string{"a", "b"}, 0.5, false)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != "b" {
		t.Errorf("frame = %q, want b", a.Frame())
	}

	a.Restart()
	if a.Frame() != "a" || a.Looped {
		t.Errorf("after restart frame = %q looped = %v", a.Frame(), a.Looped)
	}
}

func TestSingleFrameAnimationIsStatic(t *testing.T) {
	a := NewAnimation([]string{"idle"}, 0, true)
	a.Update()
	if a.Frame() != "idle" {
		t.Errorf("frame = %q", a.Frame())
	}
}
