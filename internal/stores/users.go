package stores

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/storedash/internal/api"
)

// AgeBrackets are the decades queried for age preferences.
var AgeBrackets = []int{20, 30, 40, 50}

// Gender labels as sent to /users/gender.
const (
	GenderMale   = "남"
	GenderFemale = "여"
)

const (
	msgUsersFailed  = "고객 데이터를 불러오는 데 실패했습니다."
	msgAgeFailed    = "연령별 선호 밀키트 데이터를 불러오는 데 실패했습니다."
	msgGenderFailed = "성별 선호 밀키트 데이터를 불러오는 데 실패했습니다."
)

// AgeLabel renders a bracket the way the dashboard labels it, e.g. "20대".
func AgeLabel(age int) string {
	return fmt.Sprintf("%d대", age)
}

// UserSnapshot is a copy of the user store state. TopByAge has one key per
// age bracket; the value is nil when the bracket had no sales.
type UserSnapshot struct {
	Users             []api.User
	TopByAge          map[int]*api.SalesRank
	MalePreferences   []api.SalesRank
	FemalePreferences []api.SalesRank

	UsersStatus  Status
	AgeStatus    Status
	GenderStatus Status
}

// Users owns customer demographics and their meal kit preferences.
type Users struct {
	base

	users             []api.User
	topByAge          map[int]*api.SalesRank
	malePreferences   []api.SalesRank
	femalePreferences []api.SalesRank

	usersStatus  Status
	ageStatus    Status
	genderStatus Status
}

// NewUsers builds an empty user store.
func NewUsers(client api.Requester, logger *slog.Logger) *Users {
	return &Users{
		base:     newBase(client, logger, "users"),
		topByAge: emptyAgeBuckets(),
	}
}

func emptyAgeBuckets() map[int]*api.SalesRank {
	buckets := make(map[int]*api.SalesRank, len(AgeBrackets))
	for _, age := range AgeBrackets {
		buckets[age] = nil
	}
	return buckets
}

// Snapshot returns a copy of the current state.
func (u *Users) Snapshot() UserSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	byAge := make(map[int]*api.SalesRank, len(u.topByAge))
	for age, entry := range u.topByAge {
		if entry == nil {
			byAge[age] = nil
			continue
		}
		dup := *entry
		byAge[age] = &dup
	}
	return UserSnapshot{
		Users:             cloneSlice(u.users),
		TopByAge:          byAge,
		MalePreferences:   cloneSlice(u.malePreferences),
		FemalePreferences: cloneSlice(u.femalePreferences),

		UsersStatus:  u.usersStatus,
		AgeStatus:    u.ageStatus,
		GenderStatus: u.genderStatus,
	}
}

// FetchUsers replaces the customer list of storeID.
func (u *Users) FetchUsers(ctx context.Context, storeID int64) {
	u.start(&u.usersStatus)
	var rows []api.User
	err := u.get(ctx, "fetchUsers", api.PathUsers, api.NewQuery(storeID), &rows)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.users = []api.User{}
		u.usersStatus.fail(msgUsersFailed)
		return
	}
	u.users = cloneSlice(rows)
	u.usersStatus.succeed()
}

// FetchTopMealKitsByAge queries each age bracket in turn and keeps its best
// selling kit.
func (u *Users) FetchTopMealKitsByAge(ctx context.Context, storeID int64) {
	u.start(&u.ageStatus)
	result := make(map[int]*api.SalesRank, len(AgeBrackets))
	var err error
	for _, age := range AgeBrackets {
		var rows []api.SalesRank
		query := api.NewQuery(storeID).Int("userAge", age)
		if err = u.get(ctx, "fetchTopMealKitsByAge", api.PathUsersAge, query, &rows); err != nil {
			break
		}
		result[age] = bestBy(rows, salesCount)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.topByAge = emptyAgeBuckets()
		u.ageStatus.fail(msgAgeFailed)
		return
	}
	u.topByAge = result
	u.ageStatus.succeed()
}

// FetchGenderPreferences loads the top five kits for each gender.
func (u *Users) FetchGenderPreferences(ctx context.Context, storeID int64) {
	u.start(&u.genderStatus)
	male, err := u.genderTop(ctx, storeID, GenderMale)
	var female []api.SalesRank
	if err == nil {
		female, err = u.genderTop(ctx, storeID, GenderFemale)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.malePreferences = []api.SalesRank{}
		u.femalePreferences = []api.SalesRank{}
		u.genderStatus.fail(msgGenderFailed)
		return
	}
	u.malePreferences = male
	u.femalePreferences = female
	u.genderStatus.succeed()
}

func (u *Users) genderTop(ctx context.Context, storeID int64, gender string) ([]api.SalesRank, error) {
	var rows []api.SalesRank
	query := api.NewQuery(storeID).String("userGender", gender)
	if err := u.get(ctx, "fetchGenderPreferences", api.PathUsersGender, query, &rows); err != nil {
		return nil, err
	}
	return topBy(rows, TopN, salesCount), nil
}

func salesCount(r api.SalesRank) int64 { return r.TotalSales }
