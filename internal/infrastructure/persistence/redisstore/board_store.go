package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"kanban/internal/domain/entity"
	"kanban/internal/domain/repository"
	"kanban/internal/infrastructure/serialization"
)

// BoardStore keeps the board document under a single Redis key.
// The key is "<collection>:<document>".
type BoardStore struct {
	client     *redis.Client
	collection string
	document   string
	codec      serialization.Codec
}

// Options describes how to reach the Redis server
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client. Addr may also be a redis:// URL.
func NewClient(opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	redisOpts, err := redis.ParseURL(opts.Addr)
	if err != nil {
		redisOpts = &redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}
	}
	return redis.NewClient(redisOpts), nil
}

// NewBoardStore creates a store over an existing client. The store owns the client.
func NewBoardStore(client *redis.Client, collection, document string, codec serialization.Codec) repository.BoardStore {
	return &BoardStore{
		client:     client,
		collection: collection,
		document:   document,
		codec:      codec,
	}
}

// Key returns the Redis key holding the document
func (s *BoardStore) Key() string {
	return s.collection + ":" + s.document
}

// Load reads the document, returning nil when the key does not exist
func (s *BoardStore) Load(ctx context.Context) (*entity.Board, error) {
	data, err := s.client.Get(ctx, s.Key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board document: %w", err)
	}

	board, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Save overwrites the document without expiry
func (s *BoardStore) Save(ctx context.Context, board entity.Board) error {
	data, err := s.codec.Marshal(board)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.Key(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write board document: %w", err)
	}
	return nil
}

// Clear deletes every key in the collection
func (s *BoardStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.collection+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan board documents: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear board documents: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *BoardStore) Close() error {
	return s.client.Close()
}
