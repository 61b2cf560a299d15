// Package router binds URL paths and methods to resource handlers. It
// holds no logic of its own beyond constructing the repositories each
// handler needs from the shared connection pool.
package router

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/handler"
	"github.com/sthandier/antiguedades-api/internal/repository"
	service "github.com/sthandier/antiguedades-api/internal/service"
)

// Register wires the health check and every resource's routes under
// /api on the provided Echo instance, backed by the given pool.
func Register(e *echo.Echo, db *sql.DB) {
	usuarios := handler.NewUsuarioHandler(repository.NewUsuarioRepo(db))
	productos := handler.NewProductoHandler(repository.NewProductoRepo(db))
	reservas := handler.NewReservaHandler(repository.NewReservaRepo(db), service.PublishReservaCreada)
	pagos := handler.NewPagoHandler(repository.NewPagoRepo(db))
	envios := handler.NewEnvioHandler(repository.NewEnvioRepo(db))
	blog := handler.NewBlogHandler(repository.NewBlogRepo(db))

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	u := api.Group("/usuarios")
	u.GET("", usuarios.GetAll)
	u.GET("/:id", usuarios.GetByID)
	u.POST("", usuarios.Create)
	u.POST("/desactivar", usuarios.Desactivar)
	u.PUT("/:email", usuarios.Update)
	u.DELETE("/:email", usuarios.Remove)

	p := api.Group("/productos")
	p.GET("", productos.GetAll)
	p.GET("/:id", productos.GetByID)
	p.GET("/reserva/:reservaId", productos.GetByReservaID)
	p.POST("", productos.Create)
	p.PUT("/:id", productos.Update)
	p.PUT("/:id/stock", productos.UpdateStock)
	p.PUT("/:id/estado", productos.UpdateEstado)
	p.DELETE("/:id", productos.Remove)

	r := api.Group("/reservas")
	r.GET("", reservas.GetAll)
	r.GET("/:id", reservas.GetByID)
	r.POST("", reservas.Create)
	r.PUT("/:id", reservas.Update)
	r.DELETE("/:id", reservas.Remove)

	pg := api.Group("/pagos")
	pg.GET("", pagos.GetAll)
	pg.GET("/:id", pagos.GetByID)
	pg.POST("", pagos.Create)
	pg.PUT("/:id", pagos.Update)
	pg.DELETE("/:id", pagos.Remove)

	en := api.Group("/envios")
	en.GET("", envios.GetAll)
	en.GET("/:id", envios.GetByID)
	en.POST("", envios.Create)
	en.PUT("/:id", envios.Update)
	en.DELETE("/:id", envios.Remove)

	b := api.Group("/blog")
	b.GET("", blog.GetAll)
	b.GET("/:id", blog.GetByID)
	b.POST("", blog.Create)
	b.POST("/desactivar", blog.Desactivar)
	b.PUT("/:id", blog.Update)
	b.DELETE("/:id", blog.Remove)
}

// HTTPErrorHandler renders every error that escapes the handlers with
// the legacy bodies. Routes that do not exist (or exist under another
// method) answer 404 "Ruta no encontrada"; explicit HTTPErrors keep
// their status; everything else collapses into the generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "Ruta no encontrada"})
		default:
			_ = c.JSON(he.Code, echo.Map{"error": http.StatusText(he.Code)})
		}
		return
	}
	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "Algo salió mal!"})
}
