package database_test

import (
	"testing"
	"time"

	"github.com/ouvidoria/plataforma-denuncias/internal/adapter/database"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/ouvidoria/plataforma-denuncias/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaSugestao(protocolo string) *model.Sugestao {
	return &model.Sugestao{
		Protocolo: protocolo,
		Titulo:    "Título de teste",
		Descricao: "Descrição de teste",
		Categoria: model.CategoriaGeral,
		Status:    model.StatusRecebida,
	}
}

func TestSugestaoRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := database.NewSugestaoRepository(db.DB(), testutils.TestLogger(t))
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	t.Run("create and get by protocol", func(t *testing.T) {
		s := novaSugestao("SUG-2026-AAAAAA")
		require.NoError(t, repo.Create(ctx, s))
		assert.NotZero(t, s.ID)

		got, err := repo.GetByProtocolo(ctx, "SUG-2026-AAAAAA")
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
	})

	t.Run("duplicated protocol answers the sentinel error", func(t *testing.T) {
		err := repo.Create(ctx, novaSugestao("SUG-2026-AAAAAA"))
		assert.ErrorIs(t, err, repository.ErrProtocoloDuplicado)
	})

	t.Run("list is newest first", func(t *testing.T) {
		base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		antiga := novaSugestao("SUG-2026-LISTA1")
		antiga.DataCriacao = base
		require.NoError(t, repo.Create(ctx, antiga))

		recente := novaSugestao("SUG-2026-LISTA2")
		recente.DataCriacao = base.Add(time.Hour)
		require.NoError(t, repo.Create(ctx, recente))

		lista, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(lista), 2)
		assert.Equal(t, "SUG-2026-LISTA2", lista[0].Protocolo)
	})

	t.Run("update persists status and response only", func(t *testing.T) {
		s := novaSugestao("SUG-2026-UPDT01")
		require.NoError(t, repo.Create(ctx, s))

		s.Status = "implementada"
		s.Resposta = "Aprovado para o próximo semestre"
		s.Titulo = "Tentativa de alterar título"
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "implementada", got.Status)
		assert.Equal(t, "Aprovado para o próximo semestre", got.Resposta)
		assert.Equal(t, "Título de teste", got.Titulo)
	})

	t.Run("update of an unknown id answers not found", func(t *testing.T) {
		fantasma := novaSugestao("SUG-2026-UPDT99")
		fantasma.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, fantasma), repository.ErrSugestaoNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		s := novaSugestao("SUG-2026-DELT01")
		require.NoError(t, repo.Create(ctx, s))

		require.NoError(t, repo.Delete(ctx, s.ID))
		_, err := repo.GetByID(ctx, s.ID)
		assert.ErrorIs(t, err, repository.ErrSugestaoNotFound)
	})
}
