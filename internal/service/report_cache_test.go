package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockRow struct {
	Drug  string `json:"drug"`
	Stock int    `json:"stock"`
}

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewReportCache(client, log, time.Minute, nil), mr
}

func TestCachedServesSecondReadFromRedis(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	loads := 0
	load := func() ([]stockRow, error) {
		loads++
		return []stockRow{{Drug: "Amoxil", Stock: 12}}, nil
	}

	first, err := Cached(ctx, cache, "pharmacy_stock", []string{"1"}, load)
	require.NoError(t, err)
	second, err := Cached(ctx, cache, "pharmacy_stock", []string{"1"}, load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("reports:0:pharmacy_stock:1"))
	assert.Equal(t, time.Minute, mr.TTL("reports:0:pharmacy_stock:1"))
}

func TestInvalidateMovesToNewGeneration(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	stock := 12
	load := func() ([]stockRow, error) {
		return []stockRow{{Drug: "Amoxil", Stock: stock}}, nil
	}

	_, err := Cached(ctx, cache, "pharmacy_stock", []string{"1"}, load)
	require.NoError(t, err)

	stock = 3
	require.NoError(t, cache.Invalidate(ctx))

	rows, err := Cached(ctx, cache, "pharmacy_stock", []string{"1"}, load)
	require.NoError(t, err)
	assert.Equal(t, 3, rows[0].Stock)

	gen, err := mr.Get(RedisReportGenerationKey)
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.True(t, mr.Exists("reports:1:pharmacy_stock:1"))
}

func TestCachedDoesNotStoreLoadErrors(t *testing.T) {
	cache, mr := newTestCache(t)

	_, err := Cached(context.Background(), cache, "doctor_patients", []string{"D1"}, func() ([]stockRow, error) {
		return nil, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
	assert.False(t, mr.Exists("reports:0:doctor_patients:D1"))
}

func TestCachedFallsBackWhenRedisIsDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	rows, err := Cached(context.Background(), cache, "pharmacy_stock", []string{"1"}, func() ([]stockRow, error) {
		return []stockRow{{Drug: "Amoxil", Stock: 1}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDisabledCache(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	cache := NewReportCache(nil, log, time.Minute, nil)

	assert.False(t, cache.Enabled())
	assert.NoError(t, cache.Invalidate(context.Background()))

	loads := 0
	for i := 0; i < 2; i++ {
		_, err := Cached(context.Background(), cache, "company_catalog", []string{"Acme"}, func() (int, error) {
			loads++
			return loads, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, loads)
}
