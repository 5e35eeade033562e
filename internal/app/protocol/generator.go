// Package protocol gera os códigos públicos de acompanhamento no formato
// PREFIXO-ANO-XXXXXX (6 caracteres de [A-Z0-9]).
package protocol

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

const (
	// PrefixoDenuncia e PrefixoSugestao são os prefixos públicos dos dois
	// tipos de registro.
	PrefixoDenuncia = "DEN"
	PrefixoSugestao = "SUG"

	alfabeto      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tamanhoCodigo = 6

	// MaxTentativas limita o laço de geração. Com 36^6 combinações por ano a
	// colisão é rara; o limite evita um laço vivo sob contenção patológica.
	MaxTentativas = 10
)

// ErrTentativasEsgotadas indica que nenhum código livre foi encontrado dentro
// do limite de tentativas. A condição é transitória: o chamador pode repetir
// a operação.
var ErrTentativasEsgotadas = errors.New("não foi possível gerar um protocolo único")

// ExistsFunc consulta se um protocolo já está em uso.
type ExistsFunc func(ctx context.Context, protocolo string) (bool, error)

// Generate produz um código PREFIXO-ANO-XXXXXX com 6 caracteres aleatórios.
func Generate(prefixo string) (string, error) {
	codigo := make([]byte, tamanhoCodigo)
	max := big.NewInt(int64(len(alfabeto)))
	for i := range codigo {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("falha ao gerar código aleatório: %w", err)
		}
		codigo[i] = alfabeto[n.Int64()]
	}
	return fmt.Sprintf("%s-%d-%s", prefixo, time.Now().Year(), codigo), nil
}

// GenerateUnique gera códigos até encontrar um que exists não reconheça,
// limitado a MaxTentativas. A verificação é apenas uma otimização: a
// unicidade real é garantida pelo índice único do banco, e o serviço trata a
// violação no insert tentando de novo.
func GenerateUnique(ctx context.Context, prefixo string, exists ExistsFunc) (string, error) {
	for i := 0; i < MaxTentativas; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		codigo, err := Generate(prefixo)
		if err != nil {
			return "", err
		}

		emUso, err := exists(ctx, codigo)
		if err != nil {
			return "", err
		}
		if !emUso {
			return codigo, nil
		}
	}
	return "", ErrTentativasEsgotadas
}
