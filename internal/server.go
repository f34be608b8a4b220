package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liveworkout/internal/config"
	"github.com/2beens/liveworkout/internal/db"
	"github.com/2beens/liveworkout/internal/healthsession"
	"github.com/2beens/liveworkout/internal/liveactivity"
	"github.com/2beens/liveworkout/internal/middleware"
	"github.com/2beens/liveworkout/internal/rest"
	"github.com/2beens/liveworkout/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/liveworkout/internal/telemetry/metrics/middleware"
	"github.com/2beens/liveworkout/internal/telemetry/tracing"
	"github.com/2beens/liveworkout/internal/tracker"
	"github.com/2beens/liveworkout/internal/workout"
	"github.com/2beens/liveworkout/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appAuthSecret     string // shared by the app process and the widget renderer
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	recorder        *healthsession.StreamRecorder
	sessionAdapter  *healthsession.Adapter
	workoutTracker  *tracker.Tracker
	trackerHandler  *tracker.Handler
	activityManager *liveactivity.Manager

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppAuthSecret           string
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "liveworkout_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("liveworkout", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liveworkout-backend", rdb)
	if err != nil {
		return nil, err
	}

	// redis doubles as the app group container: the rest end time and
	// the activity documents live under the shared namespace, readable
	// by the widget process
	restBridge := rest.NewBridge(params.Config.AppGroupNamespace, rdb)
	restScheduler := rest.NewScheduler()

	activityPublisher := liveactivity.NewRedisPublisher(
		params.Config.AppGroupNamespace,
		params.Config.LiveActivitiesEnabled,
		rdb,
	)
	activityManager := liveactivity.NewManager(activityPublisher, metricsManager)

	recorder := healthsession.NewStreamRecorder()
	sessionAdapter := healthsession.NewAdapter(
		recorder,
		activityManager,
		restBridge,
		restScheduler,
		metricsManager,
	)

	workoutTracker := tracker.New(
		workout.NewRepo(dbPool),
		sessionAdapter,
		activityManager,
		restBridge,
		metricsManager,
		params.Config.DefaultRestSeconds,
	)

	s := &Server{
		config:        params.Config,
		dbPool:        dbPool,
		appAuthSecret: params.AppAuthSecret,
		versionInfo:   params.VersionInfo,

		redisClient: rdb,

		recorder:        recorder,
		sessionAdapter:  sessionAdapter,
		workoutTracker:  workoutTracker,
		trackerHandler:  tracker.NewHandler(workoutTracker, workout.NewRepo(dbPool), recorder),
		activityManager: activityManager,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liveworkout-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I am a workout tracking service.")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONResponseOK(w, `{"health":"ok"}`)
	}).Methods("GET").Name("health")

	h := s.trackerHandler
	r.HandleFunc("/workout", h.HandleStartWorkout).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workout/current", h.HandleGetCurrent).Methods("GET", "OPTIONS").Name("current-workout")
	r.HandleFunc("/workout/set/complete", h.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/workout/set", h.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workout/exercise/{exerciseIndex}/set/{setIndex}", h.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
	r.HandleFunc("/workout/pause", h.HandleTogglePause).Methods("POST", "OPTIONS").Name("toggle-pause")
	r.HandleFunc("/workout/finish", h.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/workout/cancel", h.HandleCancel).Methods("POST", "OPTIONS").Name("cancel-workout")
	r.HandleFunc("/workout/sample", h.HandleAddSample).Methods("POST", "OPTIONS").Name("add-sample")
	r.HandleFunc("/workout/metrics", h.HandleGetMetrics).Methods("GET", "OPTIONS").Name("workout-metrics")
	r.HandleFunc("/workout/sessions/page/{page}/size/{size}", h.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/workout/sessions/{id}", h.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")

	// widget intents get their own rate limit, a stuck widget button
	// must not turn into a write storm
	intentsRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"widget-intents",
		s.config.IntentsRateLimitAllowedPerMin,
	)
	r.Handle("/intents/rest/adjust", intentsRateLimit(http.HandlerFunc(h.HandleAdjustRest))).Methods("POST", "OPTIONS").Name("intent-adjust-rest")
	r.Handle("/intents/rest/skip", intentsRateLimit(http.HandlerFunc(h.HandleSkipRest))).Methods("POST", "OPTIONS").Name("intent-skip-rest")
	r.Handle("/intents/set/complete", intentsRateLimit(http.HandlerFunc(h.HandleCompleteTargetSet))).Methods("POST", "OPTIONS").Name("intent-complete-set")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appAuthSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	// discard a possibly running workout before tearing the
	// connections down, the widget should not stay stuck
	if s.workoutTracker.Current() != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.workoutTracker.Cancel(ctx); err != nil {
			log.Errorf("cancel active workout on shutdown: %s", err)
		}
		cancel()
	}
	s.sessionAdapter.Close()
	log.Trace("session adapter shut down ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
