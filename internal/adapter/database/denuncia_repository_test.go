package database_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ouvidoria/plataforma-denuncias/internal/adapter/database"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/denuncia"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/ouvidoria/plataforma-denuncias/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDatabase abre um banco sqlite em memória com o esquema migrado.
// Uma única conexão no pool evita que cada conexão veja um banco distinto.
func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          "sqlite",
		DSN:             ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
		LogLevel:        gormlogger.Silent,
		SlowThreshold:   time.Second,
	}, testutils.TestLogger(t))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func novaDenuncia(protocolo string) *model.Denuncia {
	return &model.Denuncia{
		Protocolo: protocolo,
		Categoria: "Infraestrutura",
		Descricao: "Descrição de teste",
		Urgencia:  "media",
		Status:    model.StatusPendente,
		Acoes:     model.HistoricoAcoes{},
	}
}

func TestDenunciaRepository_CreateAndGet(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	t.Run("create persists and get finds by protocol", func(t *testing.T) {
		d := novaDenuncia("DEN-2026-AAAAAA")
		require.NoError(t, repo.Create(ctx, d))
		assert.NotZero(t, d.ID)

		got, err := repo.GetByProtocolo(ctx, "DEN-2026-AAAAAA")
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
		assert.Equal(t, model.StatusPendente, got.Status)
		assert.NotNil(t, got.Acoes)
		assert.Empty(t, got.Acoes)
	})

	t.Run("duplicated protocol answers the sentinel error", func(t *testing.T) {
		err := repo.Create(ctx, novaDenuncia("DEN-2026-AAAAAA"))
		assert.ErrorIs(t, err, repository.ErrProtocoloDuplicado)
	})

	t.Run("exists reflects the stored protocols", func(t *testing.T) {
		existe, err := repo.ExistsByProtocolo(ctx, "DEN-2026-AAAAAA")
		require.NoError(t, err)
		assert.True(t, existe)

		existe, err = repo.ExistsByProtocolo(ctx, "DEN-2026-ZZZZZZ")
		require.NoError(t, err)
		assert.False(t, existe)
	})

	t.Run("unknown protocol answers not found", func(t *testing.T) {
		_, err := repo.GetByProtocolo(ctx, "DEN-2026-ZZZZZZ")
		assert.ErrorIs(t, err, repository.ErrDenunciaNotFound)
	})
}

func TestDenunciaRepository_List(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	antiga := novaDenuncia("DEN-2026-LISTA1")
	antiga.DataCriacao = base
	antiga.Urgencia = "baixa"
	require.NoError(t, repo.Create(ctx, antiga))

	recente := novaDenuncia("DEN-2026-LISTA2")
	recente.DataCriacao = base.Add(time.Hour)
	recente.Urgencia = "alta"
	recente.Categoria = "Conduta"
	require.NoError(t, repo.Create(ctx, recente))

	t.Run("newest first without filters", func(t *testing.T) {
		lista, err := repo.List(ctx, repository.FiltroDenuncias{})
		require.NoError(t, err)
		require.Len(t, lista, 2)
		assert.Equal(t, "DEN-2026-LISTA2", lista[0].Protocolo)
		assert.Equal(t, "DEN-2026-LISTA1", lista[1].Protocolo)
	})

	t.Run("filters combine by equality", func(t *testing.T) {
		lista, err := repo.List(ctx, repository.FiltroDenuncias{Urgencia: "alta"})
		require.NoError(t, err)
		require.Len(t, lista, 1)
		assert.Equal(t, "DEN-2026-LISTA2", lista[0].Protocolo)

		lista, err = repo.List(ctx, repository.FiltroDenuncias{
			Categoria: "Conduta",
			Urgencia:  "baixa",
		})
		require.NoError(t, err)
		assert.Empty(t, lista)
	})
}

func TestDenunciaRepository_Update(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	d := novaDenuncia("DEN-2026-UPDT01")
	require.NoError(t, repo.Create(ctx, d))

	t.Run("persists status and action history", func(t *testing.T) {
		d.Status = "em análise"
		d.Acoes = append(d.Acoes, model.Acao{Data: time.Now().UTC(), Acao: "Encaminhado"})
		require.NoError(t, repo.Update(ctx, d))

		got, err := repo.GetByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "em análise", got.Status)
		require.Len(t, got.Acoes, 1)
		assert.Equal(t, "Encaminhado", got.Acoes[0].Acao)
	})

	t.Run("immutable fields stay untouched", func(t *testing.T) {
		alterada := *d
		alterada.Categoria = "Outra"
		alterada.Descricao = "Alterada"
		require.NoError(t, repo.Update(ctx, &alterada))

		got, err := repo.GetByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Infraestrutura", got.Categoria)
		assert.Equal(t, "Descrição de teste", got.Descricao)
	})

	t.Run("unknown id answers not found", func(t *testing.T) {
		fantasma := novaDenuncia("DEN-2026-UPDT99")
		fantasma.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, fantasma), repository.ErrDenunciaNotFound)
	})
}

func TestDenunciaRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	d := novaDenuncia("DEN-2026-DELT01")
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, repo.Delete(ctx, d.ID))

	_, err := repo.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrDenunciaNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, d.ID), repository.ErrDenunciaNotFound)
}

func TestDenunciaCriacaoConcorrente(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	service := denuncia.NewService(repo, testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	const n = 16
	var wg sync.WaitGroup
	protocolos := make([]string, n)
	erros := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			criada, err := service.Criar(ctx, denuncia.CriarInput{
				Categoria: "Infraestrutura",
				Descricao: "Criação simultânea",
				Urgencia:  "media",
			})
			if err != nil {
				erros[i] = err
				return
			}
			protocolos[i] = criada.Protocolo
		}(i)
	}
	wg.Wait()

	// Cada criação simultânea recebe um protocolo distinto
	distintos := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		require.NoError(t, erros[i])
		assert.Regexp(t, `^DEN-\d{4}-[A-Z0-9]{6}$`, protocolos[i])
		distintos[protocolos[i]] = struct{}{}
	}
	assert.Len(t, distintos, n)
}

func TestDenunciaRepository_Report(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewDenunciaRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	t.Run("empty base produces zeroed report", func(t *testing.T) {
		rel, err := repo.Report(ctx)
		require.NoError(t, err)
		assert.Zero(t, rel.Total)
		assert.NotNil(t, rel.PorStatus)
		assert.Empty(t, rel.PorStatus)
	})

	t.Run("counts group by status, category and urgency", func(t *testing.T) {
		a := novaDenuncia("DEN-2026-REPT01")
		a.Urgencia = "alta"
		require.NoError(t, repo.Create(ctx, a))

		b := novaDenuncia("DEN-2026-REPT02")
		b.Urgencia = "alta"
		b.Categoria = "Conduta"
		require.NoError(t, repo.Create(ctx, b))

		c := novaDenuncia("DEN-2026-REPT03")
		c.Urgencia = "baixa"
		c.Status = "resolvido"
		require.NoError(t, repo.Create(ctx, c))

		rel, err := repo.Report(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, rel.Total)

		porUrgencia := map[string]int64{}
		for _, item := range rel.PorUrgencia {
			porUrgencia[item.Urgencia] = item.Quantidade
		}
		assert.EqualValues(t, 2, porUrgencia["alta"])
		assert.EqualValues(t, 1, porUrgencia["baixa"])

		porStatus := map[string]int64{}
		for _, item := range rel.PorStatus {
			porStatus[item.Status] = item.Quantidade
		}
		assert.EqualValues(t, 2, porStatus[model.StatusPendente])
		assert.EqualValues(t, 1, porStatus["resolvido"])

		porCategoria := map[string]int64{}
		for _, item := range rel.PorCategoria {
			porCategoria[item.Categoria] = item.Quantidade
		}
		assert.EqualValues(t, 2, porCategoria["Infraestrutura"])
		assert.EqualValues(t, 1, porCategoria["Conduta"])
	})
}
