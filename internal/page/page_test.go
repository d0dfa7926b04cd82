package page

import (
	"reflect"
	"testing"
)

func TestDefaultStartsLoading(t *testing.T) {
	p := Default()
	if !p.Loading() {
		t.Error("Expected loader to be visible initially")
	}
	if p.MustElement(Container).Visible() {
		t.Error("Expected container to be hidden initially")
	}
}

func TestShowContent(t *testing.T) {
	p := Default()
	changes := 0
	p.OnChange = func(*Page) { changes++ }

	p.ShowContent()

	if got := p.MustElement(Container).Display(); got != "flex" {
		t.Errorf("Expected container display 'flex', got %q", got)
	}
	if got := p.MustElement(Loader).Display(); got != "none" {
		t.Errorf("Expected loader display 'none', got %q", got)
	}
	if p.Loading() {
		t.Error("Expected Loading() false after ShowContent")
	}
	if changes != 1 {
		t.Errorf("Expected 1 change notification, got %d", changes)
	}
}

func TestMarkMobile(t *testing.T) {
	p := Default()
	p.MarkMobile()

	for _, id := range []string{Background, Container, Main} {
		if !p.MustElement(id).HasClass(MobileClass) {
			t.Errorf("Expected %s to have the mobile class", id)
		}
	}
	if p.MustElement(Loader).HasClass(MobileClass) {
		t.Error("Loader should not get the mobile class")
	}
}

func TestMarkMobileSkipsUnbound(t *testing.T) {
	p := New(Background)
	p.MarkMobile()
	if got := p.MustElement(Background).Classes(); !reflect.DeepEqual(got, []string{MobileClass}) {
		t.Errorf("Expected [mobile], got %v", got)
	}
}

func TestMustElementPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing element")
		}
	}()
	New(Container).MustElement(Background)
}
