package jnav

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	ch := NewChannel(WithCapacity(2))
	for _, route := range []string{"a", "b", "c", "d", "e"} {
		ch.Send(NewTo(route, ToOptions{}))
	}
	sub := ch.Subscribe()
	defer sub.Close()
	receiveN(t, sub, 1)

	c := NewCollector(ch)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	assert.Equal(t, 4, testutil.CollectAndCount(c))

	expected := fmt.Sprintf(`
# HELP jnav_intents_delivered_total Navigation intents handed to a subscriber.
# TYPE jnav_intents_delivered_total counter
jnav_intents_delivered_total 1
# HELP jnav_intents_dropped_total Navigation intents discarded because the queue was full.
# TYPE jnav_intents_dropped_total counter
jnav_intents_dropped_total 3
# HELP jnav_intents_sent_total Navigation intents accepted by the queue.
# TYPE jnav_intents_sent_total counter
jnav_intents_sent_total 2
# HELP jnav_codec_failures_total Params or result payloads that failed to encode or decode.
# TYPE jnav_codec_failures_total counter
jnav_codec_failures_total %d
`, CodecFailures())

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}
