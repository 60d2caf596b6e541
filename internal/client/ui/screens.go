package ui

import (
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/client/services"
)

func RenderLoading(th Theme) string {
	return th.Muted.Render("Cargando...")
}

// RenderAuth is the login prompt. googleURL, when set, is offered as the
// external sign-in alternative.
func RenderAuth(st services.State, googleURL string, th Theme) string {
	lines := []string{
		th.Header.Render("Iniciar sesión"),
		"  login      iniciar sesión con correo y contraseña",
		"  register   crear una cuenta",
	}
	if googleURL != "" {
		lines = append(lines,
			"",
			th.Muted.Render("O continúa con Google:"),
			"  "+googleURL,
			th.Muted.Render("  y luego: link <url de retorno>"),
		)
	}
	if st.Err != "" {
		lines = append(lines, "", th.Danger.Render(st.Err))
	}
	return th.Panel.Render(strings.Join(lines, "\n"))
}

// RenderNav lists every view, highlighting the active one.
func RenderNav(active router.View, st services.State, th Theme) string {
	items := make([]string, 0, len(router.Views))
	for _, v := range router.Views {
		if v == active {
			items = append(items, th.Accent.Render("["+v.Title()+"]"))
			continue
		}
		items = append(items, th.Muted.Render(v.Title()))
	}
	nav := strings.Join(items, th.Muted.Render(" · "))
	if st.Identity != nil {
		nav += "\n" + th.Muted.Render("¡Hola, "+st.Identity.DisplayName()+"!")
	}
	return nav
}
