package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "garage/internal/errors"
)

func validClientCreate() ClientCreate {
	return ClientCreate{
		Name:        "Jane Doe",
		PhoneNumber: "+34 600 111 222",
	}
}

func TestClientCreateValid(t *testing.T) {
	payload := validClientCreate()
	assert.NoError(t, payload.Validate())
	assert.Nil(t, payload.Email)
}

func TestClientCreateEmailNormalization(t *testing.T) {
	payload := validClientCreate()
	blank := "   "
	payload.Email = &blank

	assert.NoError(t, payload.Validate())
	assert.Nil(t, payload.Email)

	padded := "  jane@example.com  "
	payload.Email = &padded
	assert.NoError(t, payload.Validate())
	assert.Equal(t, "jane@example.com", *payload.Email)
}

func TestClientCreateInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientCreate)
		field   string
	}{
		{"empty name", func(p *ClientCreate) { p.Name = "" }, "name"},
		{"blank name", func(p *ClientCreate) { p.Name = "   " }, "name"},
		{"long name", func(p *ClientCreate) {
			p.Name = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		}, "name"},
		{"empty phone", func(p *ClientCreate) { p.PhoneNumber = "" }, "phone_number"},
		{"phone with letters", func(p *ClientCreate) { p.PhoneNumber = "600abc" }, "phone_number"},
		{"bad email", func(p *ClientCreate) { e := "not-an-email"; p.Email = &e }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validClientCreate()
			tt.mutate(&payload)

			err := payload.Validate()
			assert.Error(t, err)

			var verrs apperrors.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestClientCreateAccumulatesAcrossFields(t *testing.T) {
	payload := ClientCreate{Name: "", PhoneNumber: "abc"}

	err := payload.Validate()
	assert.Error(t, err)

	var verrs apperrors.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, "name", verrs[0].Field)
	assert.Equal(t, "phone_number", verrs[1].Field)
}

func TestClientUpdateNilMeansNoChange(t *testing.T) {
	payload := ClientUpdate{}
	assert.NoError(t, payload.Validate())
}

func TestClientUpdateRejectsBlankName(t *testing.T) {
	blank := "   "
	payload := ClientUpdate{Name: &blank}
	assert.Error(t, payload.Validate())
}
