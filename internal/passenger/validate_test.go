package passenger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassportByCountry(t *testing.T) {
	tests := []struct {
		country  string
		passport string
		ok       bool
	}{
		{"CN", "EA0000001", true},
		{"CN", "E10000001", false},
		{"IT", "A10000001", true},
		{"IT", "AB12345", false},
		{"SE", "12345678", true},
		{"SE", "1234567", false},
		{"RO", "123456789", true},
		{"RO", "1234567", false},
		{"US", "123456789", true},
		{"US", "A12345678", true},
		{"US", "AB1234567", false},
		{"PE", "123456789", true},
		{"PE", "12345678", false},
		{"GT", "123456789", true},
		{"JP", "TK1234567", true},
		{"JP", "T12345678", false},
		{"TH", "AB123456", true},
		{"TH", "AB123", false},
		{"OTHER", "X1Y2Z3", true},
		{"OTHER", "abc", false},
		{"ZZ", "X1Y2Z3", true}, // unknown countries use the generic rule
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.passport, func(t *testing.T) {
			err := ValidatePassport(tt.country, tt.passport)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPassengerValidate(t *testing.T) {
	tests := []struct {
		name      string
		passenger Passenger
		wantErr   error
	}{
		{
			name:      "valid DNI passenger",
			passenger: Passenger{FullName: "María López", DocType: DocDNI, Document: "12345678", Seat: "1A"},
		},
		{
			name:      "valid passport passenger",
			passenger: Passenger{FullName: "Akira Tanaka", DocType: DocPassport, PassportCountry: "JP", Document: "TK1234567", Seat: "1B"},
		},
		{
			name:      "missing name",
			passenger: Passenger{DocType: DocDNI, Document: "12345678"},
			wantErr:   ErrMissingName,
		},
		{
			name:      "name with digits",
			passenger: Passenger{FullName: "Juan 2", DocType: DocDNI, Document: "12345678"},
			wantErr:   ErrInvalidName,
		},
		{
			name:      "short DNI",
			passenger: Passenger{FullName: "Juan Pérez", DocType: DocDNI, Document: "1234"},
			wantErr:   ErrInvalidDNI,
		},
		{
			name:      "missing document",
			passenger: Passenger{FullName: "Juan Pérez", DocType: DocDNI},
			wantErr:   ErrMissingDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.passenger.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactValidate(t *testing.T) {
	valid := Contact{Name: "Ana Torres", Email: "ana@example.com", Phone: "+51987654321"}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "ana@@example"
	assert.ErrorIs(t, badEmail.Validate(), ErrInvalidEmail)

	badPhone := valid
	badPhone.Phone = "12-34"
	assert.ErrorIs(t, badPhone.Validate(), ErrInvalidPhone)
}

func TestValidateAllSeatUniqueness(t *testing.T) {
	passengers := []Passenger{
		{FullName: "María López", DocType: DocDNI, Document: "12345678", Seat: "1A"},
		{FullName: "Juan Pérez", DocType: DocDNI, Document: "87654321", Seat: "1A"},
	}

	verrs, ok := ValidateAll(passengers)
	require.False(t, ok)
	assert.Nil(t, verrs[0])
	assert.ErrorIs(t, verrs[1], ErrSeatTaken)
}

func TestValidateAllSeatBounds(t *testing.T) {
	passengers := []Passenger{
		{FullName: "María López", DocType: DocDNI, Document: "12345678", Seat: "9Z"},
		{FullName: "Juan Pérez", DocType: DocDNI, Document: "87654321"},
	}

	verrs, ok := ValidateAll(passengers)
	require.False(t, ok)
	assert.ErrorIs(t, verrs[0], ErrSeatUnknown)
	assert.ErrorIs(t, verrs[1], ErrMissingSeat)
}

func TestAvailableSeats(t *testing.T) {
	free := AvailableSeats([]string{"1A", "2B", ""})

	assert.Len(t, free, 10)
	assert.NotContains(t, free, "1A")
	assert.NotContains(t, free, "2B")
	assert.Contains(t, free, "3D")
}
