package timezone

import "time"

// El estudio opera en horario argentino; fechaHora viaja igualmente con
// offset explícito (RFC 3339), esto es sólo el reloj local por defecto.
// STUDIO_TZ permite mover el estudio de huso sin recompilar.
const DefaultTimezone = "America/Argentina/Buenos_Aires"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resuelve tz, cayendo al huso del estudio si no es válido.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}
