package export

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

func sampleRecord(rpc string) *models.ProductRecord {
	record := models.NewProductRecord("https://alkoteka.com/product/x-" + rpc)
	record.RPC = rpc
	record.Title = "Vodka, 0.5L"
	record.PriceData = models.PriceData{Current: 1000, Original: 2000, SaleTag: "Скидка 50%"}
	return record
}

func TestNDJSONSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.ndjson")

	sink, err := OpenNDJSON(path)
	require.NoError(t, err)

	require.NoError(t, sink.Write(context.Background(), sampleRecord("1")))
	require.NoError(t, sink.Write(context.Background(), sampleRecord("2")))
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var rpcs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record models.ProductRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		rpcs = append(rpcs, record.RPC)
		assert.Equal(t, "Vodka, 0.5L", record.Title)
		assert.Equal(t, "Скидка 50%", record.PriceData.SaleTag)
	}
	assert.Equal(t, []string{"1", "2"}, rpcs)
}

func TestNDJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleRecord("42"))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"timestamp", "RPC", "url", "title", "marketing_tags", "brand",
		"section", "price_data", "stock", "assets", "metadata", "variants",
	} {
		assert.Contains(t, raw, key)
	}
}

type fakeRedis struct {
	added []*redis.XAddArgs
	err   error
}

func (f *fakeRedis) XAdd(ctx context.Context, args *redis.XAddArgs) *redis.StringCmd {
	f.added = append(f.added, args)
	cmd := redis.NewStringCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	}
	return cmd
}

func (f *fakeRedis) Close() error { return nil }

func TestRedisStreamSinkPublishes(t *testing.T) {
	client := &fakeRedis{}
	sink := NewRedisStreamSink(client, "")

	require.NoError(t, sink.Write(context.Background(), sampleRecord("77")))

	require.Len(t, client.added, 1)
	args := client.added[0]
	assert.Equal(t, "products:extracted", args.Stream)
	assert.Equal(t, "77", args.Values.(map[string]interface{})["rpc"])

	var record models.ProductRecord
	payload := args.Values.(map[string]interface{})["record"].(string)
	require.NoError(t, json.Unmarshal([]byte(payload), &record))
	assert.Equal(t, "Vodka, 0.5L", record.Title)
}

func TestRedisStreamSinkError(t *testing.T) {
	client := &fakeRedis{err: errors.New("connection refused")}
	sink := NewRedisStreamSink(client, "events")

	err := sink.Write(context.Background(), sampleRecord("1"))
	assert.ErrorContains(t, err, "failed to publish record")
}

type failingSink struct{}

func (failingSink) Write(context.Context, *models.ProductRecord) error {
	return errors.New("sink down")
}
func (failingSink) Close() error { return nil }

type countingSink struct{ writes int }

func (s *countingSink) Write(context.Context, *models.ProductRecord) error {
	s.writes++
	return nil
}
func (s *countingSink) Close() error { return nil }

func TestMultiSinkDeliversDespiteFailure(t *testing.T) {
	counting := &countingSink{}
	multi := NewMultiSink(failingSink{}, counting)

	err := multi.Write(context.Background(), sampleRecord("1"))
	assert.ErrorContains(t, err, "sink down")
	assert.Equal(t, 1, counting.writes)
}
