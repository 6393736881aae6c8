package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingForm(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		form BookingForm
		want Errors
	}{
		{
			name: "valid",
			form: BookingForm{ClientName: "Иван", ClientPhone: "+7 916 123-45-67"},
			want: nil,
		},
		{
			name: "valid with city code in brackets",
			form: BookingForm{ClientName: "Иван", ClientPhone: "8(916)1234567"},
			want: nil,
		},
		{
			name: "empty",
			form: BookingForm{},
			want: Errors{"clientName": msgNameRequired, "clientPhone": msgPhoneRequired},
		},
		{
			name: "letters in phone",
			form: BookingForm{ClientName: "Иван", ClientPhone: "abc"},
			want: Errors{"clientPhone": msgPhoneInvalid},
		},
		{
			name: "short phone",
			form: BookingForm{ClientName: "Иван", ClientPhone: "123"},
			want: Errors{"clientPhone": msgPhoneInvalid},
		},
		{
			name: "long name",
			form: BookingForm{ClientName: strings.Repeat("я", 101), ClientPhone: "9161234567"},
			want: Errors{"clientName": msgTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.form))
		})
	}
}

func TestValidateRequestFormIgnoresChoices(t *testing.T) {
	v := NewValidator()

	errs := v.Validate(RequestForm{ClientName: "Ivan", ClientPhone: "+79161112233", ClientGoal: "nope"})
	assert.Empty(t, errs)
}

func TestParseRequest(t *testing.T) {
	body := url.Values{
		"clientName":  {"  Ivan "},
		"clientPhone": {" +79161112233"},
		"clientGoal":  {"work"},
		"clientTime":  {"3-5"},
	}
	r := httptest.NewRequest(http.MethodPost, "/request_done/", strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.Equal(t, RequestForm{
		ClientName:  "Ivan",
		ClientPhone: "+79161112233",
		ClientGoal:  "work",
		ClientTime:  "3-5",
	}, ParseRequest(r))
}

func TestNewRequestFormDefaults(t *testing.T) {
	f := NewRequestForm()
	assert.Equal(t, "travel", f.ClientGoal)
	assert.Equal(t, "1-2", f.ClientTime)
}
