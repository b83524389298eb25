// token emite un JWT firmado con JWT_SECRET para llamar a las rutas protegidas de la API.
//
// Uso: go run ./cmd/token -role bodeguero [-user <uuid>] [-exp 120]
// Imprime el token listo para la cabecera Authorization: Bearer <token>.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/smart-inventory/pkg/config"
	"github.com/jhoicas/smart-inventory/pkg/jwt"
)

func main() {
	role := flag.String("role", jwt.RoleBodeguero, "rol del token: admin, bodeguero o vendedor")
	userID := flag.String("user", "", "ID del usuario (por defecto un UUID nuevo)")
	exp := flag.Int("exp", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: la API corre sin autenticación y no requiere token")
		os.Exit(1)
	}

	switch *role {
	case jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleVendedor:
	default:
		fmt.Fprintf(os.Stderr, "Rol desconocido: %q\n", *role)
		os.Exit(2)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}
	if *exp <= 0 {
		*exp = cfg.JWT.Expiration
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *role, cfg.JWT.Issuer, *exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
