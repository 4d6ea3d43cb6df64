package gui

import "testing"

func isolateDataDirs(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func TestPrefsDefaults(t *testing.T) {
	isolateDataDirs(t)

	store, err := OpenPrefs("space_defender_test")
	if err != nil {
		t.Fatalf("OpenPrefs() failed: %v", err)
	}

	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p != DefaultPrefs() {
		t.Errorf("Load() = %+v, want defaults %+v", p, DefaultPrefs())
	}
}

func TestPrefsSaveLoad(t *testing.T) {
	isolateDataDirs(t)

	store, err := OpenPrefs("space_defender_test")
	if err != nil {
		t.Fatalf("OpenPrefs() failed: %v", err)
	}

	want := Prefs{Fullscreen: true, Stars: false}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reopened, err := OpenPrefs("space_defender_test")
	if err != nil {
		t.Fatalf("OpenPrefs() failed: %v", err)
	}
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestPrefsNilStore(t *testing.T) {
	var store *PrefsStore

	if err := store.Save(Prefs{Fullscreen: true}); err != nil {
		t.Errorf("Save() on nil store = %v, want nil", err)
	}
	p, err := store.Load()
	if err != nil {
		t.Errorf("Load() on nil store = %v, want nil", err)
	}
	if p != DefaultPrefs() {
		t.Errorf("Load() on nil store = %+v, want defaults", p)
	}
}
