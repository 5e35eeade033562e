package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const redisKeyPrefix = "sessao:"

// RedisStore implementa a interface Store usando Redis. As sessões expiram
// pelo TTL nativo das chaves.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore cria um armazenamento de sessões sobre um cliente Redis
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// RedisConfig parametriza o cliente Redis usado pelo armazenamento de sessões
type RedisConfig struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// Options converte a configuração nas opções do cliente Redis
func (c RedisConfig) Options() *redis.Options {
	return &redis.Options{
		Addr:         c.Address,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
	}
}

// NewRedisClient cria e verifica um cliente Redis
func NewRedisClient(cfg RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(cfg.Options())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Falha ao conectar ao Redis",
			zap.String("addr", cfg.Address),
			zap.Error(err))
		return nil, err
	}

	logger.Info("Conexão com Redis estabelecida com sucesso",
		zap.String("addr", cfg.Address),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize))

	return client, nil
}

// Create registra uma nova sessão e retorna o token opaco
func (s *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	token := uuid.New().String()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("falha ao serializar sessão: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		s.logger.Error("falha ao gravar sessão no Redis", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Get recupera a sessão pelo token
func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		s.logger.Error("falha ao ler sessão do Redis",
			zap.Error(err))
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("falha ao desserializar sessão: %w", err)
	}
	return &data, nil
}

// Destroy encerra a sessão
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

// Ping verifica se o Redis está acessível
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
