package shared_test

import (
	"encoding/json"
	"errors"
	"frontdesk/shared"
	"frontdesk/shared/failure"
	"net/http"
	"reflect"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room:catalog", "http://backend"); got != "room:catalog:http://backend" {
		t.Errorf("unexpected key %s", got)
	}

	if got := shared.BuildCacheKey("limiter"); got != "limiter" {
		t.Errorf("unexpected key %s", got)
	}
}

func TestFingerprint(t *testing.T) {
	a := shared.Fingerprint("token-a")

	if a != shared.Fingerprint("token-a") {
		t.Error("fingerprint is not stable")
	}

	if a == shared.Fingerprint("token-b") {
		t.Error("different secrets share a fingerprint")
	}

	if len(a) != 16 {
		t.Errorf("unexpected fingerprint length %d", len(a))
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int64
		wantOK bool
	}{
		{name: "number", input: `12`, wantID: 12, wantOK: true},
		{name: "numeric string", input: `"12"`, wantID: 12, wantOK: true},
		{name: "padded string", input: `" 7 "`, wantID: 7, wantOK: true},
		{name: "python none", input: `"None"`},
		{name: "empty string", input: `""`},
		{name: "undefined", input: `"undefined"`},
		{name: "null literal", input: `null`},
		{name: "zero", input: `0`},
		{name: "negative", input: `-3`},
		{name: "fraction", input: `1.5`},
		{name: "word", input: `"abc"`},
		{name: "absent", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := shared.ParseID(json.RawMessage(tt.input))
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("ParseID(%s) = %d, %v; want %d, %v", tt.input, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestIsBlankID(t *testing.T) {
	blank := []string{``, `null`, `""`, `"None"`, `"null"`, `"undefined"`, `" "`}
	for _, input := range blank {
		if !shared.IsBlankID(json.RawMessage(input)) {
			t.Errorf("expected %q to be blank", input)
		}
	}

	present := []string{`5`, `"5"`, `"abc"`, `-1`}
	for _, input := range present {
		if shared.IsBlankID(json.RawMessage(input)) {
			t.Errorf("expected %q not to be blank", input)
		}
	}
}

func TestNormalizeIDs(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`3`),
		json.RawMessage(`"None"`),
		json.RawMessage(`"1"`),
		json.RawMessage(`null`),
		json.RawMessage(`3`),
	}

	got := shared.NormalizeIDs(raw)
	want := []int64{3, 1, 3}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeIDs = %v, want %v", got, want)
	}

	if got := shared.NormalizeIDs(nil); got == nil || len(got) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", got)
	}
}

func TestSelectedIDs(t *testing.T) {
	got := shared.SelectedIDs(map[string]int{"9": 1, "2": 3, "5": 0, "x": 1, "None": 2})
	want := []int64{2, 9}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedIDs = %v, want %v", got, want)
	}
}

func TestPathID(t *testing.T) {
	id, err := shared.PathID("42")
	if err != nil || id != 42 {
		t.Errorf("PathID(42) = %d, %v", id, err)
	}

	_, err = shared.PathID("abc")

	var fail *failure.Failure
	if !errors.As(err, &fail) || fail.Code != http.StatusBadRequest {
		t.Errorf("expected a bad request failure, got %v", err)
	}
}

func TestInt64Ptr(t *testing.T) {
	if p := shared.Int64Ptr(4); p == nil || *p != 4 {
		t.Errorf("unexpected pointer %v", p)
	}
}
