// Command token emite un JWT firmado para un funcionario, usando JWT_SECRET de la configuración.
//
//	go run ./cmd/token -user maria -branch 2 -role operador
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pasqualotto/controle-estoque/pkg/config"
	"github.com/pasqualotto/controle-estoque/pkg/jwt"
)

func main() {
	user := flag.String("user", "", "identificador del funcionario (obligatorio)")
	branch := flag.Int("branch", 0, "filial del funcionario (obligatoria para operador)")
	role := flag.String("role", jwt.RoleOperador, "rol: admin | operador")
	flag.Parse()

	if err := run(*user, *branch, *role); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(user string, branch int, role string) error {
	if user == "" {
		return fmt.Errorf("-user es obligatorio")
	}
	switch role {
	case jwt.RoleAdmin:
	case jwt.RoleOperador:
		if branch <= 0 {
			return fmt.Errorf("-branch es obligatorio para el rol operador")
		}
	default:
		return fmt.Errorf("rol desconocido %q", role)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if !cfg.JWT.Enabled() {
		return fmt.Errorf("JWT_SECRET no configurado")
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, user, branch, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
