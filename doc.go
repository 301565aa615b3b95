// Package relay keeps a typed configuration value fresh.
//
// A Relay wraps a Loader: construction invokes the loader once and fails if
// it fails, so a session always holds a value. Attached watch sources fire
// triggers; each trigger re-invokes the loader. Successful loads replace the
// held value atomically and fan out to subscribers. Failed loads leave the
// held value untouched and are routed to a single optional error handler.
//
// relay contains no parsing, merging, or validation logic. What a load means
// is entirely the loader's business; the loaders subpackage adapts common
// loader libraries.
//
// # Sources
//
// The Source interface abstracts change detection. A source fires a bare
// trigger when the watched thing may have changed; it never carries data.
// The core package provides IntervalSource, FileSource, ChannelSource, and
// SignalSource. Additional sources live in their own packages:
//
//   - etcd: etcd Watch API
//   - consul: Consul blocking queries
//   - nats: NATS JetStream KV watch
//   - zookeeper: ZooKeeper node watch
//   - redis: Redis keyspace notifications
//   - postgres: PostgreSQL LISTEN/NOTIFY
//
// # Error handling
//
// Reads never fail: Latest always returns the most recently published
// value. Failures surface three ways. Construction returns
// *InitialLoadError. Background failures (*ReloadError, *SourceError,
// *SubscriberPanicError) go to the handler set with OnError; the handler is
// a single replaceable slot, deliberately not a subscription list. A session
// with no handler drops background failures after recording them - that is
// the default contract, not an oversight. LastError and Errors expose the
// recorded failures for polling.
//
// # State
//
// A session is Healthy when the held value reflects the most recent load
// attempt, Degraded after a failed reload. Source errors do not degrade the
// session: the held value is still the latest successful load.
//
// # Example
//
//	type Config struct {
//	    Port int    `json:"port" validate:"min=1,max=65535"`
//	    Host string `json:"host" validate:"required"`
//	}
//
//	r, err := relay.New[Config](ctx,
//	    loaders.Validated[Config](loaders.File[Config]("/etc/app/config.json")),
//	    relay.WithLoadTimeout(5*time.Second),
//	)
//	if err != nil {
//	    log.Fatalf("initial config failed: %v", err)
//	}
//	defer r.Close()
//
//	r.Attach(relay.NewFileSource("/etc/app/config.json")).
//	    Attach(relay.NewSignalSource()).
//	    OnError(func(err error) {
//	        log.Printf("config reload: %v", err)
//	    }).
//	    Subscribe(func(cfg Config) {
//	        app.Reconfigure(cfg)
//	    })
//
//	srv.ListenAndServe(r.Latest().Host, r.Latest().Port)
package relay
