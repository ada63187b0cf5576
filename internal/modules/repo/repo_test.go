package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/barchasb-io/barchasb/internal/modules/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Task{}, &model.Label{}, &model.Report{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := model.User{Name: name, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedTask(t *testing.T, db *gorm.DB, point int) *model.Task {
	t.Helper()
	task := model.Task{
		Type:  "image",
		Data:  datatypes.JSON(`{"url":"https://example.com/a.png"}`),
		Point: point,
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func TestUserRepo_CreateDuplicateName(t *testing.T) {
	db := setupDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.User{Name: "alice", Password: "h1"}))
	err := r.Create(ctx, &model.User{Name: "alice", Password: "h2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("name = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepo_UpdateMissingRow(t *testing.T) {
	db := setupDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	assert.ErrorIs(t, r.UpdateName(ctx, uuid.New(), "ghost"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.UpdatePassword(ctx, uuid.New(), "hash"), gorm.ErrRecordNotFound)
}

func TestUserRepo_ListByPointsDesc(t *testing.T) {
	db := setupDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	for _, u := range []model.User{
		{Name: "alice", Password: "x", Points: 100},
		{Name: "bob", Password: "x", Points: 200},
		{Name: "charlie", Password: "x", Points: 300},
	} {
		require.NoError(t, db.Create(&u).Error)
	}

	users, err := r.ListByPointsDesc(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "charlie", users[0].Name)
	assert.Equal(t, "bob", users[1].Name)
	assert.Equal(t, "alice", users[2].Name)
}

func TestLabelRepo_SubmitWithReward(t *testing.T) {
	db := setupDB(t)
	r := NewLabelRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	task := seedTask(t, db, 10)

	l := model.Label{UserID: user.ID, TaskID: task.ID, Content: datatypes.JSON(`{"answer":"cat"}`)}
	require.NoError(t, r.SubmitWithReward(ctx, &l))
	assert.NotEqual(t, uuid.Nil, l.ID)

	var fresh model.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 10, fresh.Points)
	assert.Equal(t, 1, fresh.LabeledCount)

	// second label for the same task still credits the reward
	l2 := model.Label{UserID: user.ID, TaskID: task.ID, Content: datatypes.JSON(`{"answer":"dog"}`)}
	require.NoError(t, r.SubmitWithReward(ctx, &l2))
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 20, fresh.Points)
	assert.Equal(t, 2, fresh.LabeledCount)
}

func TestLabelRepo_SubmitDanglingRefs(t *testing.T) {
	db := setupDB(t)
	r := NewLabelRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	task := seedTask(t, db, 10)

	err := r.SubmitWithReward(ctx, &model.Label{
		UserID:  uuid.New(),
		TaskID:  task.ID,
		Content: datatypes.JSON(`{}`),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = r.SubmitWithReward(ctx, &model.Label{
		UserID:  user.ID,
		TaskID:  uuid.New(),
		Content: datatypes.JSON(`{}`),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// rollback leaves no label rows and no reward behind
	var labels int64
	require.NoError(t, db.Model(&model.Label{}).Count(&labels).Error)
	assert.EqualValues(t, 0, labels)

	var fresh model.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 0, fresh.Points)
	assert.Equal(t, 0, fresh.LabeledCount)
}

func TestLabelRepo_ListByTaskOrder(t *testing.T) {
	db := setupDB(t)
	r := NewLabelRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	task := seedTask(t, db, 10)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{`"a"`, `"b"`, `"c"`} {
		l := model.Label{
			UserID:    user.ID,
			TaskID:    task.ID,
			Content:   datatypes.JSON(content),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&l).Error)
	}

	labels, err := r.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	assert.JSONEq(t, `"a"`, string(labels[0].Content))
	assert.JSONEq(t, `"b"`, string(labels[1].Content))
	assert.JSONEq(t, `"c"`, string(labels[2].Content))
}

func TestTaskRepo_Feed(t *testing.T) {
	db := setupDB(t)
	tasks := NewTaskRepo(db)
	labels := NewLabelRepo(db)
	reports := NewReportRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")

	open := seedTask(t, db, 5)
	labeled := seedTask(t, db, 5)
	reported := seedTask(t, db, 5)
	done := seedTask(t, db, 5)
	require.NoError(t, db.Model(done).Update("is_done", true).Error)

	require.NoError(t, labels.SubmitWithReward(ctx, &model.Label{
		UserID: user.ID, TaskID: labeled.ID, Content: datatypes.JSON(`"x"`),
	}))
	require.NoError(t, reports.SubmitChecked(ctx, &model.Report{
		UserID: &user.ID, TaskID: reported.ID, Details: "broken",
	}))

	feed, err := tasks.Feed(ctx, user.ID, 20)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, open.ID, feed[0].ID)

	// a different user still sees everything not done
	other := seedUser(t, db, "bob")
	feed, err = tasks.Feed(ctx, other.ID, 20)
	require.NoError(t, err)
	assert.Len(t, feed, 3)

	// limit caps the result
	feed, err = tasks.Feed(ctx, other.ID, 2)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestTaskRepo_SetDone(t *testing.T) {
	db := setupDB(t)
	r := NewTaskRepo(db)
	ctx := context.Background()

	task := seedTask(t, db, 5)

	updated, err := r.SetDone(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsDone)

	// idempotent on an already-done task
	updated, err = r.SetDone(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsDone)

	_, err = r.SetDone(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	listed, err := r.ListDone(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, task.ID, listed[0].ID)
}

func TestTaskRepo_ListLabeledByUser(t *testing.T) {
	db := setupDB(t)
	tasks := NewTaskRepo(db)
	labels := NewLabelRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	t1 := seedTask(t, db, 5)
	t2 := seedTask(t, db, 5)
	seedTask(t, db, 5) // never labeled

	require.NoError(t, labels.SubmitWithReward(ctx, &model.Label{
		UserID: user.ID, TaskID: t1.ID, Content: datatypes.JSON(`"x"`),
	}))
	// two labels on the same task must not duplicate the row
	require.NoError(t, labels.SubmitWithReward(ctx, &model.Label{
		UserID: user.ID, TaskID: t1.ID, Content: datatypes.JSON(`"y"`),
	}))
	require.NoError(t, labels.SubmitWithReward(ctx, &model.Label{
		UserID: user.ID, TaskID: t2.ID, Content: datatypes.JSON(`"z"`),
	}))

	got, err := tasks.ListLabeledByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReportRepo_SubmitChecked(t *testing.T) {
	db := setupDB(t)
	r := NewReportRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	task := seedTask(t, db, 5)

	rep := model.Report{UserID: &user.ID, TaskID: task.ID, Details: "blurry"}
	require.NoError(t, r.SubmitChecked(ctx, &rep))

	// duplicates are allowed
	again := model.Report{UserID: &user.ID, TaskID: task.ID, Details: "still blurry"}
	require.NoError(t, r.SubmitChecked(ctx, &again))

	missing := uuid.New()
	err := r.SubmitChecked(ctx, &model.Report{UserID: &user.ID, TaskID: missing, Details: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = r.SubmitChecked(ctx, &model.Report{UserID: &missing, TaskID: task.ID, Details: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	mine, err := r.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
