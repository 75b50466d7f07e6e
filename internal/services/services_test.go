package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityguide/internal/authz"
	"cityguide/internal/config"
	"cityguide/internal/infra"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

type stubGeocoder struct {
	mu        sync.Mutex
	coords    *Coordinates
	addresses []string
	cities    []string
}

func (g *stubGeocoder) LookupByAddress(_ context.Context, address string) *Coordinates {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addresses = append(g.addresses, address)
	return g.coords
}

func (g *stubGeocoder) LookupByCityName(_ context.Context, name string) *Coordinates {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cities = append(g.cities, name)
	return g.coords
}

type testEnv struct {
	db         *gorm.DB
	geocoder   *stubGeocoder
	tokens     *utils.TokenIssuer
	categories CategoryServiceInterface
	cities     CityServiceInterface
	pois       POIServiceInterface
	users      UserServiceInterface
	ratings    RatingServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	db, err := infra.InitDatabase(config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         ":memory:?_foreign_keys=on",
		AutoMigrate: true,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, log) })

	categoryRepo := repositories.NewCategoryRepository(db)
	cityRepo := repositories.NewCityRepository(db)
	poiRepo := repositories.NewPOIRepository(db)
	userRepo := repositories.NewUserRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	geocoder := &stubGeocoder{}
	tokens := utils.NewTokenIssuer("test-secret-0123456789", time.Hour)
	enforcer, err := authz.NewEnforcer(log)
	require.NoError(t, err)

	return &testEnv{
		db:         db,
		geocoder:   geocoder,
		tokens:     tokens,
		categories: NewCategoryService(categoryRepo, log),
		cities:     NewCityService(cityRepo, geocoder, log),
		pois:       NewPOIService(poiRepo, cityRepo, categoryRepo, geocoder, log),
		users:      NewUserService(userRepo, cityRepo, tokens, enforcer, 4, log),
		ratings:    NewRatingService(ratingRepo, poiRepo, userRepo, log),
	}
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func ptr[T any](v T) *T { return &v }

func lat(v float64) *float64 { return &v }

func (e *testEnv) mustCity(t *testing.T, name string) *db_models.City {
	t.Helper()
	city, err := e.cities.CreateCity(context.Background(), request_models.CreateCityRequest{
		Name:        name,
		Description: "a city",
		Latitude:    lat(48.85),
		Longitude:   lat(2.35),
	})
	require.NoError(t, err)
	return city
}

func (e *testEnv) mustCategory(t *testing.T, name string) *db_models.Category {
	t.Helper()
	category, err := e.categories.CreateCategory(context.Background(), request_models.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}

func (e *testEnv) mustPoi(t *testing.T, name string, cityID, categoryID uint) *db_models.POI {
	t.Helper()
	poi, err := e.pois.CreatePoi(context.Background(), request_models.CreatePoiRequest{
		Name:       name,
		Address:    "1 rue de Rivoli",
		PostalCode: "75001",
		Latitude:   lat(48.86),
		Longitude:  lat(2.33),
		CityID:     cityID,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return poi
}

func (e *testEnv) mustUser(t *testing.T, email string, cityID *uint) *db_models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), request_models.RegisterRequest{
		Email:     email,
		FirstName: "Grace",
		LastName:  "Hopper",
		Password:  "secret123",
		CityID:    cityID,
	})
	require.NoError(t, err)
	return user
}

func TestCategoryService_NameUniqueInAnyCasing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustCategory(t, "  Museum ")
	assert.Equal(t, "museum", created.Name)
	assert.NotNil(t, created.POIs)

	for _, name := range []string{"museum", "MUSEUM", " MuSeUm"} {
		unique, err := env.categories.IsCategoryNameUnique(ctx, name)
		require.NoError(t, err)
		assert.False(t, unique, name)
	}

	_, err := env.categories.CreateCategory(ctx, request_models.CreateCategoryRequest{Name: "MUSEUM"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Equal(t, "Category name already exists.", err.Error())
	assert.Equal(t, int64(1), env.count(t, &db_models.Category{}))
}

func TestCategoryService_CreateRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.CreateCategory(context.Background(), request_models.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, int64(0), env.count(t, &db_models.Category{}))
}

func TestCategoryService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "museum")
	env.mustPoi(t, "louvre", city.ID, category.ID)

	msg, err := env.categories.UpdateCategory(ctx, category.ID, request_models.UpdateCategoryRequest{Name: ptr("Art Museum")})
	require.NoError(t, err)
	assert.Equal(t, "Category updated", msg)

	got, err := env.categories.GetCategoryById(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "art museum", got.Name)
	assert.Len(t, got.POIs, 1)

	_, err = env.categories.UpdateCategory(ctx, 999, request_models.UpdateCategoryRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	msg, err = env.categories.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Category has been deleted", msg)
	assert.Equal(t, int64(0), env.count(t, &db_models.POI{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.City{}))

	_, err = env.categories.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCityService_CreateUsesSuppliedCoordinates(t *testing.T) {
	env := newTestEnv(t)
	env.geocoder.coords = &Coordinates{Latitude: 1, Longitude: 1}

	city := env.mustCity(t, "Paris")
	assert.Equal(t, "paris", city.Name)
	assert.Equal(t, 48.85, *city.Latitude)
	assert.Empty(t, env.geocoder.cities)
	assert.NotNil(t, city.POIs)
	assert.NotNil(t, city.Users)
}

func TestCityService_CreateGeocodesWhenCoordinatesMissing(t *testing.T) {
	env := newTestEnv(t)
	env.geocoder.coords = &Coordinates{Latitude: 45.76, Longitude: 4.83}

	city, err := env.cities.CreateCity(context.Background(), request_models.CreateCityRequest{
		Name:        "Lyon",
		Description: "gastronomy",
		Latitude:    lat(10),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"lyon"}, env.geocoder.cities)
	require.NotNil(t, city.Latitude)
	assert.Equal(t, 45.76, *city.Latitude)
	assert.Equal(t, 4.83, *city.Longitude)
}

func TestCityService_GeocoderMissDoesNotFailCreation(t *testing.T) {
	env := newTestEnv(t)

	city, err := env.cities.CreateCity(context.Background(), request_models.CreateCityRequest{
		Name:        "Nowhere",
		Description: "off the map",
	})
	require.NoError(t, err)
	assert.Nil(t, city.Latitude)
	assert.Nil(t, city.Longitude)
}

func TestCityService_GetByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCity(t, "Paris")

	city, err := env.cities.GetCityByName(ctx, "  PARIS")
	require.NoError(t, err)
	assert.Equal(t, "paris", city.Name)

	_, err = env.cities.GetCityByName(ctx, "atlantis")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCityService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	paris := env.mustCity(t, "paris")
	rome := env.mustCity(t, "rome")
	category := env.mustCategory(t, "museum")
	louvre := env.mustPoi(t, "louvre", paris.ID, category.ID)
	orsay := env.mustPoi(t, "orsay", paris.ID, category.ID)
	vatican := env.mustPoi(t, "vatican", rome.ID, category.ID)
	parisian := env.mustUser(t, "p@example.com", &paris.ID)
	roman := env.mustUser(t, "r@example.com", &rome.ID)

	for _, r := range []request_models.CreateRatingRequest{
		{Score: 5, POIID: louvre.ID, UserID: roman.ID},
		{Score: 4, POIID: orsay.ID, UserID: roman.ID},
		{Score: 3, POIID: vatican.ID, UserID: parisian.ID},
		{Score: 2, POIID: vatican.ID, UserID: roman.ID},
	} {
		_, err := env.ratings.CreateRating(ctx, r)
		require.NoError(t, err)
	}

	msg, err := env.cities.DeleteCity(ctx, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, "The City has been deleted", msg)

	assert.Equal(t, int64(1), env.count(t, &db_models.City{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.POI{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.User{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.Rating{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.Category{}))

	_, err = env.cities.GetCityById(ctx, paris.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCityService_UpdateIsPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")

	msg, err := env.cities.UpdateCity(ctx, city.ID, request_models.UpdateCityRequest{Description: ptr("city of light")})
	require.NoError(t, err)
	assert.Equal(t, "City updated", msg)

	got, err := env.cities.GetCityById(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, "paris", got.Name)
	assert.Equal(t, "city of light", got.Description)
	assert.Equal(t, 48.85, *got.Latitude)

	env.mustCity(t, "rome")
	_, err = env.cities.UpdateCity(ctx, city.ID, request_models.UpdateCityRequest{Name: ptr("ROME")})
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = env.cities.UpdateCity(ctx, 404, request_models.UpdateCityRequest{Description: ptr("x")})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPoiService_CreateGeocodesAddress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "Paris")
	category := env.mustCategory(t, "Museum")
	env.geocoder.coords = &Coordinates{Latitude: 48.8606, Longitude: 2.3376}

	poi, err := env.pois.CreatePoi(ctx, request_models.CreatePoiRequest{
		Name:       "Musée du Louvre",
		Address:    "Rue de Rivoli",
		PostalCode: "75001",
		Images:     []string{"louvre.jpg"},
		CityID:     city.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Rue de Rivoli, 75001 paris"}, env.geocoder.addresses)
	require.NotNil(t, poi.Latitude)
	assert.Equal(t, 48.8606, *poi.Latitude)
	assert.Equal(t, 2.3376, *poi.Longitude)
	assert.Equal(t, city.ID, poi.City.ID)
	assert.Equal(t, category.ID, poi.Category.ID)
	assert.NotNil(t, poi.Ratings)

	got, err := env.pois.GetPOIById(ctx, poi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Musée du Louvre", got.Name)
	assert.Equal(t, db_models.ImageRefs{"louvre.jpg"}, got.Images)
}

func TestPoiService_CreateWithoutCoordinatesWhenGeocoderMisses(t *testing.T) {
	env := newTestEnv(t)
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "park")

	poi, err := env.pois.CreatePoi(context.Background(), request_models.CreatePoiRequest{
		Name:       "Jardin",
		Address:    "somewhere",
		CityID:     city.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, poi.Latitude)
	assert.Nil(t, poi.Longitude)
}

func TestPoiService_CreateRequiresExistingParents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "park")

	_, err := env.pois.CreatePoi(ctx, request_models.CreatePoiRequest{
		Name: "x", Address: "y", CityID: 999, CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = env.pois.CreatePoi(ctx, request_models.CreatePoiRequest{
		Name: "x", Address: "y", CityID: city.ID, CategoryID: 999,
	})
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, int64(0), env.count(t, &db_models.POI{}))
}

func TestPoiService_UpdateAndMove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	paris := env.mustCity(t, "paris")
	lyon := env.mustCity(t, "lyon")
	category := env.mustCategory(t, "museum")
	poi := env.mustPoi(t, "louvre", paris.ID, category.ID)

	msg, err := env.pois.UpdatePoi(ctx, poi.ID, request_models.UpdatePoiRequest{
		Description: ptr("big"),
		CityID:      ptr(lyon.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "POI updated", msg)

	got, err := env.pois.GetPOIById(ctx, poi.ID)
	require.NoError(t, err)
	assert.Equal(t, "louvre", got.Name)
	assert.Equal(t, "big", got.Description)
	assert.Equal(t, lyon.ID, got.City.ID)

	_, err = env.pois.UpdatePoi(ctx, poi.ID, request_models.UpdatePoiRequest{CategoryID: ptr(uint(999))})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = env.pois.UpdatePoi(ctx, 999, request_models.UpdatePoiRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPoiService_DeleteRemovesRatings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "museum")
	poi := env.mustPoi(t, "louvre", city.ID, category.ID)
	user := env.mustUser(t, "a@example.com", nil)

	_, err := env.ratings.CreateRating(ctx, request_models.CreateRatingRequest{Score: 5, POIID: poi.ID, UserID: user.ID})
	require.NoError(t, err)

	msg, err := env.pois.DeletePoi(ctx, poi.ID)
	require.NoError(t, err)
	assert.Equal(t, "The POI has been deleted", msg)
	assert.Equal(t, int64(0), env.count(t, &db_models.Rating{}))
	assert.Equal(t, int64(1), env.count(t, &db_models.User{}))

	_, err = env.pois.DeletePoi(ctx, poi.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRatingService_CreateRequiresPoiAndUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "museum")
	poi := env.mustPoi(t, "louvre", city.ID, category.ID)
	user := env.mustUser(t, "a@example.com", nil)

	_, err := env.ratings.CreateRating(ctx, request_models.CreateRatingRequest{Score: 4, POIID: 999, UserID: user.ID})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = env.ratings.CreateRating(ctx, request_models.CreateRatingRequest{Score: 4, POIID: poi.ID, UserID: 999})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	assert.Equal(t, int64(0), env.count(t, &db_models.Rating{}))
}

func TestRatingService_ScoreRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")
	category := env.mustCategory(t, "museum")
	poi := env.mustPoi(t, "louvre", city.ID, category.ID)
	user := env.mustUser(t, "a@example.com", nil)

	for _, score := range []float64{0, 5.5, -1} {
		_, err := env.ratings.CreateRating(ctx, request_models.CreateRatingRequest{Score: score, POIID: poi.ID, UserID: user.ID})
		assert.ErrorIs(t, err, utils.ErrValidation, "score %v", score)
	}

	rating, err := env.ratings.CreateRating(ctx, request_models.CreateRatingRequest{
		Score: 4.5, Comment: "lovely", POIID: poi.ID, UserID: user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, poi.ID, rating.POI.ID)
	assert.Equal(t, user.ID, rating.User.ID)

	byPoi, err := env.ratings.GetRatingsByPoi(ctx, poi.ID)
	require.NoError(t, err)
	require.Len(t, byPoi, 1)
	assert.Equal(t, "lovely", byPoi[0].Comment)

	_, err = env.ratings.GetRatingsByPoi(ctx, 999)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	msg, err := env.ratings.DeleteRating(ctx, rating.ID)
	require.NoError(t, err)
	assert.Equal(t, "Your rating has been deleted", msg)

	_, err = env.ratings.DeleteRating(ctx, rating.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	city := env.mustCity(t, "paris")

	user := env.mustUser(t, " ada@example.com ", &city.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.HashedPassword)

	_, err := env.users.Register(ctx, request_models.RegisterRequest{
		Email: "ada@example.com", FirstName: "A", LastName: "B", Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Equal(t, "Email already in use.", err.Error())

	token, err := env.users.Login(ctx, request_models.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	claims, err := env.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)
}

func TestUserService_LoginFailuresLookTheSame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustUser(t, "ada@example.com", nil)

	_, wrongPassword := env.users.Login(ctx, request_models.LoginRequest{Email: "ada@example.com", Password: "nope-nope"})
	_, unknownEmail := env.users.Login(ctx, request_models.LoginRequest{Email: "bob@example.com", Password: "secret123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.True(t, errors.Is(wrongPassword, utils.ErrUnauthorized))
}

func TestUserService_RegisterRejectsUnknownCity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(context.Background(), request_models.RegisterRequest{
		Email: "ada@example.com", FirstName: "A", LastName: "B", Password: "secret123", CityID: ptr(uint(42)),
	})
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, int64(0), env.count(t, &db_models.User{}))
}

func TestUserService_CheckSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.mustUser(t, "ada@example.com", nil)

	session, err := env.users.CheckSession(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, Session{Email: "ada@example.com", IsLoggedIn: true, Role: db_models.RoleUser}, session)

	session, err = env.users.CheckSession(ctx, 0)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)

	_, err = env.users.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	session, err = env.users.CheckSession(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
}

func asActor(userID uint, role db_models.Role) context.Context {
	return authz.WithActor(context.Background(), authz.Actor{UserID: userID, Role: role})
}

func TestUserService_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.mustUser(t, "ada@example.com", nil)
	env.mustUser(t, "taken@example.com", nil)

	msg, err := env.users.UpdateUser(asActor(99, db_models.RoleAdmin), user.ID, request_models.UpdateUserRequest{
		FirstName: ptr("Augusta"),
		Password:  ptr("another-secret"),
		Role:      ptr(db_models.RoleCityAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, "User updated", msg)

	got, err := env.users.GetUserById(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
	assert.Equal(t, "Hopper", got.LastName)
	assert.Equal(t, db_models.RoleCityAdmin, got.Role)

	_, err = env.users.Login(ctx, request_models.LoginRequest{Email: "ada@example.com", Password: "another-secret"})
	assert.NoError(t, err)

	_, err = env.users.UpdateUser(ctx, user.ID, request_models.UpdateUserRequest{Email: ptr("taken@example.com")})
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = env.users.UpdateUser(asActor(99, db_models.RoleAdmin), user.ID, request_models.UpdateUserRequest{Role: ptr(db_models.Role("ROOT"))})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUserService_RegisterAlwaysCreatesUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ada@example.com", nil)
	assert.Equal(t, db_models.RoleUser, user.Role)

	stored, err := env.users.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, stored.Role)
}

func TestUserService_RoleChangeNeedsAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ada@example.com", nil)

	for _, ctx := range []context.Context{
		context.Background(),
		asActor(user.ID, db_models.RoleUser),
		asActor(user.ID, db_models.RoleCityAdmin),
		asActor(user.ID, db_models.RoleSuperUser),
	} {
		_, err := env.users.UpdateUser(ctx, user.ID, request_models.UpdateUserRequest{
			FirstName: ptr("Augusta"),
			Role:      ptr(db_models.RoleAdmin),
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	}

	got, err := env.users.GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, got.Role)
	assert.Equal(t, "Grace", got.FirstName)

	_, err = env.users.UpdateUser(asActor(user.ID, db_models.RoleUser), user.ID, request_models.UpdateUserRequest{
		FirstName: ptr("Augusta"),
	})
	require.NoError(t, err)

	_, err = env.users.UpdateUser(asActor(42, db_models.RoleAdmin), user.ID, request_models.UpdateUserRequest{
		Role: ptr(db_models.RoleSuperUser),
	})
	require.NoError(t, err)
	got, err = env.users.GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleSuperUser, got.Role)
	assert.Equal(t, "Augusta", got.FirstName)
}

func TestGeocodeAddress(t *testing.T) {
	city := &db_models.City{Name: "strasbourg"}

	tests := []struct {
		name string
		poi  db_models.POI
		want string
	}{
		{name: "full", poi: db_models.POI{Address: "1 place de la Cathedrale", PostalCode: "67000"}, want: "1 place de la Cathedrale, 67000 strasbourg"},
		{name: "no postal code", poi: db_models.POI{Address: "1 place de la Cathedrale"}, want: "1 place de la Cathedrale, strasbourg"},
		{name: "blank address", poi: db_models.POI{Address: "  ", PostalCode: "67000"}, want: "67000 strasbourg"},
		{name: "empty address", poi: db_models.POI{}, want: "strasbourg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geocodeAddress(&tt.poi, city))
		})
	}

	assert.Equal(t, "1 rue Haute", geocodeAddress(&db_models.POI{Address: "1 rue Haute"}, &db_models.City{}))
}

func TestUserService_EnsureAdminIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.users.EnsureAdmin(ctx, "admin@example.com", "admin-password"))
	require.NoError(t, env.users.EnsureAdmin(ctx, "admin@example.com", "admin-password"))
	require.NoError(t, env.users.EnsureAdmin(ctx, "", ""))

	admin, err := env.users.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, admin.Role)
	assert.Equal(t, int64(1), env.count(t, &db_models.User{}))
}

func TestUserService_IsEmailUnique(t *testing.T) {
	env := newTestEnv(t)
	env.mustUser(t, "ada@example.com", nil)

	unique, err := env.users.IsEmailUnique(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = env.users.IsEmailUnique(context.Background(), strings.ToUpper("new@example.com"))
	require.NoError(t, err)
	assert.True(t, unique)
}
