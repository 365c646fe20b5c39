package passenger

import "regexp"

type DocType string

const (
	DocDNI      DocType = "DNI"
	DocPassport DocType = "Pasaporte"
)

type Passenger struct {
	FullName        string  `json:"full_name"`
	DocType         DocType `json:"doc_type"`
	PassportCountry string  `json:"passport_country,omitempty"`
	Document        string  `json:"document"`
	Seat            string  `json:"seat"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingName     ValidationError = "el nombre es obligatorio"
	ErrInvalidName     ValidationError = "el nombre solo puede contener letras y espacios (máx. 50)"
	ErrMissingDocument ValidationError = "el documento es obligatorio"
	ErrInvalidDNI      ValidationError = "el DNI debe tener 8 dígitos"
	ErrMissingSeat     ValidationError = "debes elegir un asiento"
	ErrSeatUnknown     ValidationError = "asiento fuera del mapa de la cabina"
	ErrSeatTaken       ValidationError = "asiento ya asignado a otro pasajero"
	ErrInvalidEmail    ValidationError = "correo electrónico inválido"
	ErrInvalidPhone    ValidationError = "el teléfono debe tener entre 7 y 15 dígitos"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s]{1,50}$`)
	dniRe   = regexp.MustCompile(`^\d{8}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// passportRules holds the per-country passport formats. OTHER doubles as the
// fallback for countries without a specific rule.
var passportRules = map[string]struct {
	re      *regexp.Regexp
	message ValidationError
}{
	"CN":    {regexp.MustCompile(`^[A-Za-z]{2}\d{7}$`), "para China: 2 letras seguidas de 7 dígitos"},
	"IT":    {regexp.MustCompile(`^[A-Za-z0-9]{2}\d{7}$`), "para Italia: 2 letras o números seguidos de 7 dígitos"},
	"SE":    {regexp.MustCompile(`^\d{8}$`), "para Suecia: el pasaporte debe tener 8 dígitos"},
	"RO":    {regexp.MustCompile(`^\d{8,9}$`), "para Rumania: el pasaporte debe tener 8 o 9 dígitos"},
	"US":    {regexp.MustCompile(`^(\d{9}|[A-Za-z]\d{8})$`), "para Estados Unidos: 9 dígitos o 1 letra seguida de 8 dígitos"},
	"PE":    {regexp.MustCompile(`^\d{9}$`), "para este país: el pasaporte debe tener 9 dígitos"},
	"GT":    {regexp.MustCompile(`^\d{9}$`), "para este país: el pasaporte debe tener 9 dígitos"},
	"JP":    {regexp.MustCompile(`^[A-Za-z]{2}\d{7}$`), "para Japón: 2 letras seguidas de 7 dígitos"},
	"TH":    {regexp.MustCompile(`^[A-Za-z0-9]{8,9}$`), "para Tailandia: 8 o 9 caracteres alfanuméricos"},
	"OTHER": {regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`), "para otros países: 6 a 12 caracteres alfanuméricos"},
}

// ValidatePassport checks a passport number against its issuing country's
// format. Unknown countries fall back to the generic OTHER rule.
func ValidatePassport(country, passport string) error {
	rule, ok := passportRules[country]
	if !ok {
		rule = passportRules["OTHER"]
	}
	if !rule.re.MatchString(passport) {
		return rule.message
	}
	return nil
}

// Validate checks a single passenger's fields, ignoring seat assignment;
// seats are validated across the whole booking by ValidateAll.
func (p Passenger) Validate() error {
	if p.FullName == "" {
		return ErrMissingName
	}
	if !nameRe.MatchString(p.FullName) {
		return ErrInvalidName
	}
	if p.Document == "" {
		return ErrMissingDocument
	}

	switch p.DocType {
	case DocPassport:
		if err := ValidatePassport(p.PassportCountry, p.Document); err != nil {
			return err
		}
	default:
		if !dniRe.MatchString(p.Document) {
			return ErrInvalidDNI
		}
	}
	return nil
}

func (c Contact) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if !nameRe.MatchString(c.Name) {
		return ErrInvalidName
	}
	if !emailRe.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if !phoneRe.MatchString(c.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateAll validates every passenger and enforces seat uniqueness within
// the booking. The returned slice is indexed like the input; a nil entry
// means that passenger passed.
func ValidateAll(passengers []Passenger) (errs []error, ok bool) {
	errs = make([]error, len(passengers))
	ok = true

	taken := make(map[string]bool)
	for i, p := range passengers {
		if err := p.Validate(); err != nil {
			errs[i] = err
			ok = false
			continue
		}
		if err := checkSeat(p.Seat, taken); err != nil {
			errs[i] = err
			ok = false
			continue
		}
		taken[p.Seat] = true
	}
	return errs, ok
}
