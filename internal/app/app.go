package app

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/adapter/database"
	"github.com/ouvidoria/plataforma-denuncias/internal/adapter/http"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/auth"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/denuncia"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/sugestao"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/usuario"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/metrics"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/middleware"
	"github.com/ouvidoria/plataforma-denuncias/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// App reúne todas as dependências da aplicação já injetadas
type App struct {
	Logger          *zap.Logger
	Config          *config.Config
	DB              *database.Database
	Sessions        session.Store
	Middleware      *middleware.Middleware
	APIMetrics      *metrics.APIMetrics
	DenunciaHandler *http.DenunciaHandler
	SugestaoHandler *http.SugestaoHandler
	AuthHandler     *http.AuthHandler
	UsuarioHandler  *http.UsuarioHandler
	HealthChecker   *http.HealthChecker
}

// NewApp cria uma nova instância da aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	// Inicializar banco de dados
	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        gormLogLevel(cfg.Database.LogLevel),
		SlowThreshold:   cfg.Database.SlowThreshold,
	}, logger)
	if err != nil {
		return nil, err
	}

	// Criar a conta admin padrão, se habilitado
	if cfg.Auth.BootstrapAdmin {
		if err := db.EnsureDefaultAdmin(ctx, cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword, cfg.Auth.BcryptCost, logger); err != nil {
			return nil, err
		}
	}

	// Inicializar armazenamento de sessões
	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Inicializar repositórios
	denunciaRepo := database.NewDenunciaRepository(db.DB(), logger)
	sugestaoRepo := database.NewSugestaoRepository(db.DB(), logger)
	usuarioRepo := database.NewUsuarioRepository(db.DB(), logger)

	// Inicializar serviços
	denunciaService := denuncia.NewService(denunciaRepo, logger)
	sugestaoService := sugestao.NewService(sugestaoRepo, logger)
	authService := auth.NewService(usuarioRepo, sessions, logger)
	usuarioService := usuario.NewService(usuarioRepo, logger)
	usuarioService.SetBcryptCost(cfg.Auth.BcryptCost)

	// Inicializar middleware
	middlewares := middleware.NewMiddleware(logger, sessions, cfg.Session.CookieName, cfg.Server.AllowedOrigins)

	// Inicializar métricas
	var apiMetrics *metrics.APIMetrics
	if cfg.Metrics.Enabled {
		apiMetrics = metrics.NewAPIMetrics()
		denunciaService.SetMetrics(apiMetrics)
		sugestaoService.SetMetrics(apiMetrics)
		middlewares.SetMetricsMiddleware(apiMetrics)
	}

	cookie := http.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	}

	return &App{
		Logger:          logger,
		Config:          cfg,
		DB:              db,
		Sessions:        sessions,
		Middleware:      middlewares,
		APIMetrics:      apiMetrics,
		DenunciaHandler: http.NewDenunciaHandler(denunciaService, logger),
		SugestaoHandler: http.NewSugestaoHandler(sugestaoService, logger),
		AuthHandler:     http.NewAuthHandler(authService, cookie, logger),
		UsuarioHandler:  http.NewUsuarioHandler(usuarioService, logger),
		HealthChecker:   http.NewHealthChecker(db, sessions, logger),
	}, nil
}

// newSessionStore seleciona o backend de sessões conforme a configuração
func newSessionStore(cfg *config.Config, logger *zap.Logger) (session.Store, error) {
	switch cfg.Session.Type {
	case "redis":
		client, err := session.NewRedisClient(session.RedisConfig{
			Address:      cfg.Session.Redis.Address,
			Password:     cfg.Session.Redis.Password,
			DB:           cfg.Session.Redis.DB,
			PoolSize:     cfg.Session.Redis.PoolSize,
			MinIdleConns: cfg.Session.Redis.MinIdleConns,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("falha ao inicializar sessões no Redis: %w", err)
		}
		return session.NewRedisStore(client, cfg.Session.TTL, logger), nil
	case "memory":
		logger.Info("Sessões em memória: não sobrevivem a um restart do processo")
		return session.NewMemoryStore(cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("tipo de armazenamento de sessão não suportado: %s", cfg.Session.Type)
	}
}

// gormLogLevel converte o nível configurado para o LogLevel do GORM
func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// RegisterRoutes registra todas as rotas no router
func (a *App) RegisterRoutes(router *gin.Engine) {
	// Middleware global
	router.Use(a.Middleware.Recovery())
	router.Use(a.Middleware.SecurityHeaders())
	router.Use(a.Middleware.CORS())
	if a.Config.Tracing.Enabled {
		router.Use(a.Middleware.Tracing())
	}
	router.Use(a.Middleware.Metrics())

	api := router.Group("/api")
	{
		// Caminho anônimo: registrar e acompanhar sem qualquer credencial
		api.POST("/denuncias", a.DenunciaHandler.Criar)
		api.GET("/denuncias/:protocolo", a.DenunciaHandler.BuscarPorProtocolo)
		api.POST("/sugestoes", a.SugestaoHandler.Criar)
		api.GET("/sugestoes/:protocolo", a.SugestaoHandler.BuscarPorProtocolo)

		// Sessão da equipe
		api.POST("/login", a.AuthHandler.Login)
		api.POST("/logout", a.AuthHandler.Logout)
		api.GET("/me", a.Middleware.Authenticate, a.AuthHandler.Me)

		// Triagem (qualquer perfil autenticado)
		api.GET("/denuncias", a.Middleware.Authenticate, a.DenunciaHandler.Listar)
		api.PUT("/denuncias/:id", a.Middleware.Authenticate, a.DenunciaHandler.Atualizar)
		api.GET("/sugestoes", a.Middleware.Authenticate, a.SugestaoHandler.Listar)
		api.PUT("/sugestoes/:id", a.Middleware.Authenticate, a.SugestaoHandler.Atualizar)
		api.DELETE("/denuncias/:id", a.Middleware.Authenticate, a.DenunciaHandler.Remover)
		api.DELETE("/sugestoes/:id", a.Middleware.Authenticate, a.SugestaoHandler.Remover)
		api.GET("/relatorios", a.Middleware.Authenticate, a.DenunciaHandler.Relatorio)
		api.GET("/usuarios", a.Middleware.Authenticate, a.UsuarioHandler.Listar)

		// Gestão de usuários: escrita exclusiva do Admin
		usuarios := api.Group("/usuarios")
		usuarios.Use(a.Middleware.AuthenticateAdmin)
		{
			usuarios.POST("", a.UsuarioHandler.Criar)
			usuarios.PUT("/:id", a.UsuarioHandler.Atualizar)
			usuarios.DELETE("/:id", a.UsuarioHandler.Remover)
		}
	}

	// Health checks
	router.GET("/health", a.HealthChecker.LivenessCheck)
	router.GET("/health/liveness", a.HealthChecker.LivenessCheck)
	router.GET("/health/readiness", a.HealthChecker.ReadinessCheck)
	router.GET("/health/detailed", a.Middleware.AuthenticateAdmin, a.HealthChecker.DetailedHealth)

	// Expor endpoint de métricas para Prometheus
	if a.Config.Metrics.Enabled {
		router.GET(a.Config.Metrics.PrometheusPath, gin.WrapH(promhttp.Handler()))
		a.Logger.Info("Endpoint de métricas Prometheus registrado",
			zap.String("path", a.Config.Metrics.PrometheusPath))
	}

	a.registerStatic(router)
}

// registerStatic serve o front-end embarcado. Qualquer rota desconhecida fora
// de /api cai no index.html para o roteamento ficar no lado do cliente.
func (a *App) registerStatic(router *gin.Engine) {
	if !a.Config.Static.Enabled {
		return
	}

	dir := a.Config.Static.Dir
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		a.Logger.Warn("Front-end estático habilitado mas index.html não foi encontrado",
			zap.String("dir", dir))
		return
	}

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.StaticFile("/", index)

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/health") {
			c.JSON(nethttp.StatusNotFound, gin.H{"erro": "Rota não encontrada"})
			return
		}

		candidate := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(index)
	})
}
