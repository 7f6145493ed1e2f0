package venues

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestRegisterValidators(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators: %v", err)
	}
	if err := RegisterValidators(); err != nil {
		t.Fatalf("second RegisterValidators: %v", err)
	}
}

func TestRegisterTagsReportsFailures(t *testing.T) {
	v := validator.New()
	if err := registerTags(v, builderTags); err != nil {
		t.Fatalf("registerTags: %v", err)
	}

	tests := []struct {
		field string
		tag   string
		ok    bool
	}{
		{"arc", "stand_shape", true},
		{"oval", "stand_shape", false},
		{"blocked", "node_status", true},
		{"closed", "node_status", false},
		{"booked", "seat_status", true},
		{"blocked", "seat_status", false},
	}
	for _, tt := range tests {
		err := v.Var(tt.field, tt.tag)
		if (err == nil) != tt.ok {
			t.Errorf("%s=%q: err = %v, want ok=%v", tt.tag, tt.field, err, tt.ok)
		}
	}

	broken := []bindingTag{{"", func(validator.FieldLevel) bool { return true }}}
	if err := registerTags(validator.New(), broken); err == nil {
		t.Error("registering an unnamed tag succeeded")
	}
}
