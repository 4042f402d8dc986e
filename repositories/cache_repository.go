package repositories

import (
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/rs/zerolog/log"
)

const (
	localTTL     = 5 * time.Minute
	memcachedTTL = int32(15 * 60) // segundos
	keyPrefix    = "voucher:"
	maxKeyLength = 250 // limite do protocolo do memcached
)

// VoucherCache guarda o resultado de buscas por voucher_id
type VoucherCache interface {
	Get(voucherID string) (*domain.VoucherUserView, bool)
	Set(voucherID string, view *domain.VoucherUserView)
	Delete(voucherID string)
	Flush()
}

// voucherCache tem dois níveis: ccache local e, se configurado, memcached
type voucherCache struct {
	local     *ccache.Cache[*domain.VoucherUserView]
	memcached *memcache.Client
}

// NewVoucherCache cria o cache; memcachedHost vazio = só cache local
func NewVoucherCache(memcachedHost string) VoucherCache {
	c := &voucherCache{
		local: ccache.New(ccache.Configure[*domain.VoucherUserView]().MaxSize(1000)),
	}
	if memcachedHost != "" {
		c.memcached = memcache.New(memcachedHost)
		log.Info().Str("host", memcachedHost).Msg("voucher cache using memcached")
	}
	return c
}

func cacheKey(voucherID string) (string, bool) {
	key := keyPrefix + url.QueryEscape(voucherID)
	return key, len(key) <= maxKeyLength
}

// Get procura primeiro no cache local e depois no memcached
func (c *voucherCache) Get(voucherID string) (*domain.VoucherUserView, bool) {
	key, ok := cacheKey(voucherID)

	// 1. Cache local
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}

	if c.memcached == nil || !ok {
		return nil, false
	}

	// 2. Memcached
	item, err := c.memcached.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("memcached get failed")
		}
		return nil, false
	}

	var view domain.VoucherUserView
	if err := json.Unmarshal(item.Value, &view); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("memcached value is not a voucher")
		return nil, false
	}

	// 3. Promove para o cache local
	c.local.Set(key, &view, localTTL)
	return &view, true
}

// Set grava nos dois níveis
func (c *voucherCache) Set(voucherID string, view *domain.VoucherUserView) {
	key, ok := cacheKey(voucherID)
	c.local.Set(key, view, localTTL)

	if c.memcached == nil || !ok {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("marshal voucher for memcached")
		return
	}
	if err := c.memcached.Set(&memcache.Item{Key: key, Value: data, Expiration: memcachedTTL}); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("memcached set failed")
	}
}

// Delete remove a entrada dos dois níveis
func (c *voucherCache) Delete(voucherID string) {
	key, ok := cacheKey(voucherID)
	c.local.Delete(key)

	if c.memcached == nil || !ok {
		return
	}
	if err := c.memcached.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("memcached delete failed")
	}
}

// Flush esvazia tudo (usado pelo reset do banco)
func (c *voucherCache) Flush() {
	c.local.Clear()

	if c.memcached == nil {
		return
	}
	if err := c.memcached.DeleteAll(); err != nil {
		log.Warn().Err(err).Msg("memcached flush failed")
	}
}
