package commands

import (
	"fmt"

	"classy-weather/internal/application/presenter"
	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/gateway/api"
	"classy-weather/internal/domain/gateway/store"
	"classy-weather/internal/domain/usecase/weather"
	"classy-weather/pkg/http"
	"classy-weather/pkg/redis"
	"classy-weather/pkg/resource"
)

// app holds the components shared by every command
type app struct {
	useCase     weather.UseCase
	queryStore  store.QueryStore
	session     *session.Session
	presenter   *presenter.Presenter
	redisClient *redis.Client
}

func newApp() (*app, error) {
	a := &app{}

	gateway := api.NewWeatherGateway(
		resource.GetString("app.weather.geocoding-url"),
		resource.GetString("app.weather.forecast-url"),
		http.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
			DefaultHeaders:    map[string]string{"User-Agent": resource.GetString("app.name")},
		},
	)
	a.useCase = weather.NewWeatherUseCase(resource.GetInt("app.weather.forecast-days"), gateway)

	key := resource.GetString("app.store.key")
	switch storeType := resource.GetString("app.store.type"); storeType {
	case "file":
		a.queryStore = store.NewFileQueryStore(resource.GetString("app.home"), key)
	case "redis":
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
		if err != nil {
			return nil, err
		}
		a.redisClient = client
		a.queryStore = store.NewRedisQueryStore(client, key)
	case "memory":
		a.queryStore = store.NewMemoryQueryStore("")
	default:
		return nil, fmt.Errorf("unknown query store %q, expected file, redis or memory", storeType)
	}

	a.session = session.NewSession(a.useCase, a.queryStore)
	a.presenter = presenter.NewPresenter(nil)
	return a, nil
}

func (a *app) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}
