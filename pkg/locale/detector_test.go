package locale

import "testing"

func TestInferCountryFromPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantCode string
		wantNil  bool
	}{
		{
			name:     "Jordan mobile",
			phone:    "+962791234567",
			wantCode: "JO",
		},
		{
			name:     "Jordan local format",
			phone:    "0791234567",
			wantCode: "JO",
		},
		{
			name:     "US phone",
			phone:    "+12125551234",
			wantCode: "US",
		},
		{
			name:     "UK phone",
			phone:    "+44 20 7946 0958",
			wantCode: "GB",
		},
		{
			name:    "unsupported country",
			phone:   "+33142685300",
			wantNil: true,
		},
		{
			name:    "empty phone",
			phone:   "",
			wantNil: true,
		},
		{
			name:    "invalid phone",
			phone:   "not-a-phone",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCountryFromPhone(tt.phone)
			if tt.wantNil {
				if got != nil {
					t.Errorf("InferCountryFromPhone(%q) = %v, want nil", tt.phone, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("InferCountryFromPhone(%q) = nil, want %q", tt.phone, tt.wantCode)
			}
			if got.Code != tt.wantCode {
				t.Errorf("InferCountryFromPhone(%q).Code = %q, want %q", tt.phone, got.Code, tt.wantCode)
			}
		})
	}
}

func TestInferNationalityFromPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+962791234567", "Jordanian"},
		{"+1 (212) 555-1234", "American"},
		{"+33142685300", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := InferNationalityFromPhone(tt.phone); got != tt.want {
			t.Errorf("InferNationalityFromPhone(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}
