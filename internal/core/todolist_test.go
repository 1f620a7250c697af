package core_test

import (
	"errors"
	"fmt"
	"time"

	"todolist/internal/core"
	"todolist/internal/core/fake"
	"todolist/internal/storage"
	"todolist/internal/storage/models"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("TodoList", func() {
	var (
		fakeStore  *fake.Store
		fakeLogger *zap.SugaredLogger
		todoList   *core.TodoList
		fakeErr    error
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeLogger = zap.NewNop().Sugar()
		fakeErr = errors.New("fake error")
		todoList = core.NewTodoList(fakeLogger, fakeStore, core.DefaultFreeLimit)
	})

	Describe("CreateUser", func() {
		var (
			msg  core.UserMessage
			user *models.User
			err  error
		)

		BeforeEach(func() {
			msg = core.UserMessage{Name: "A", Username: "a"}
		})

		JustBeforeEach(func() {
			user, err = todoList.CreateUser(msg)
		})

		When("the username is free", func() {
			It("should store a new free plan user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.Name).To(Equal("A"))
				Expect(user.Username).To(Equal("a"))
				Expect(user.Pro).To(BeFalse())
				Expect(user.Todos).NotTo(BeNil())
				Expect(user.Todos).To(BeEmpty())

				Expect(fakeStore.UsernameExistsCallCount()).To(Equal(1))
				Expect(fakeStore.UsernameExistsArgsForCall(0)).To(Equal("a"))
				Expect(fakeStore.AddUserCallCount()).To(Equal(1))
				Expect(fakeStore.AddUserArgsForCall(0)).To(BeIdenticalTo(user))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStore.UsernameExistsReturns(true)
			})

			It("should return ErrUsernameTaken and not store anything", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(user).To(BeNil())
				Expect(fakeStore.AddUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ResolveUser", func() {
		When("the store does not know the username", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(nil, storage.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := todoList.ResolveUser("ghost")
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeStore.UserByUsernameArgsForCall(0)).To(Equal("ghost"))
			})
		})

		When("the store fails unexpectedly", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(nil, fakeErr)
			})

			It("should wrap the error", func() {
				_, err := todoList.ResolveUser("a")
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrUserNotFound))
			})
		})

		When("the user exists", func() {
			var user *models.User

			BeforeEach(func() {
				user = &models.User{ID: uuid.NewString(), Username: "a"}
				fakeStore.UserByUsernameReturns(user, nil)
			})

			It("should carry the user", func() {
				uc, err := todoList.ResolveUser("a")
				Expect(err).NotTo(HaveOccurred())
				Expect(uc.User()).To(BeIdenticalTo(user))
			})
		})
	})

	Describe("ResolveUserByID", func() {
		When("the store does not know the id", func() {
			BeforeEach(func() {
				fakeStore.UserByIDReturns(nil, storage.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := todoList.ResolveUserByID("missing")
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeStore.UserByIDArgsForCall(0)).To(Equal("missing"))
				Expect(fakeStore.UserByUsernameCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ResolveTodo", func() {
		var (
			user *models.User
			todo *models.Todo
		)

		BeforeEach(func() {
			todo = &models.Todo{ID: uuid.NewString(), Title: "t"}
			user = &models.User{ID: uuid.NewString(), Username: "a", Todos: []*models.Todo{todo}}
			fakeStore.UserByUsernameReturns(user, nil)
		})

		It("should carry both the todo and its owner", func() {
			tc, err := todoList.ResolveTodo("a", todo.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tc.Todo()).To(BeIdenticalTo(todo))
			Expect(tc.User()).To(BeIdenticalTo(user))
		})

		It("should reject a malformed id before searching", func() {
			_, err := todoList.ResolveTodo("a", "not-a-uuid")
			Expect(err).To(MatchError(core.ErrInvalidIdentifier))
			Expect(err).NotTo(MatchError(core.ErrTodoNotFound))
		})

		DescribeTable("should reject ids outside the canonical RFC 4122 form",
			func(id string) {
				_, err := todoList.ResolveTodo("a", id)
				Expect(err).To(MatchError(core.ErrInvalidIdentifier))
			},
			Entry("32 hex digits without hyphens", "0123456789abcdef0123456789abcdef"),
			Entry("non RFC 4122 variant", "12345678-1234-1234-1234-123456789012"),
			Entry("version outside 1 to 5", "12345678-1234-9234-8234-123456789012"),
			Entry("urn prefix", "urn:uuid:12345678-1234-4234-8234-123456789012"),
			Entry("braces", "{12345678-1234-4234-8234-123456789012}"),
		)

		DescribeTable("should accept canonical ids and report them as not found",
			func(id string) {
				_, err := todoList.ResolveTodo("a", id)
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			},
			Entry("version 1", "12345678-1234-1234-8234-123456789012"),
			Entry("version 5 upper case", "12345678-1234-5234-B234-123456789012"),
			Entry("nil uuid", "00000000-0000-0000-0000-000000000000"),
		)

		It("should report a well formed but unknown id as not found", func() {
			_, err := todoList.ResolveTodo("a", uuid.NewString())
			Expect(err).To(MatchError(core.ErrTodoNotFound))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStore.UserByUsernameReturns(nil, storage.ErrUserNotFound)
			})

			It("should report the missing user even for a malformed id", func() {
				_, err := todoList.ResolveTodo("ghost", "not-a-uuid")
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Context("with an in-memory store", func() {
		var (
			store *storage.MemoryStore
			user  *models.User
			uc    core.UserContext
			msg   core.TodoMessage
			now   time.Time
		)

		createTodo := func() (*models.Todo, error) {
			qc, err := todoList.CheckQuota(uc)
			if err != nil {
				return nil, err
			}
			return todoList.CreateTodo(qc, msg), nil
		}

		BeforeEach(func() {
			now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			core.TimeNow = func() time.Time { return now }

			store = storage.NewMemoryStore()
			todoList = core.NewTodoList(fakeLogger, store, core.DefaultFreeLimit)

			var err error
			user, err = todoList.CreateUser(core.UserMessage{Name: "A", Username: "a"})
			Expect(err).NotTo(HaveOccurred())
			uc, err = todoList.ResolveUser("a")
			Expect(err).NotTo(HaveOccurred())

			msg = core.TodoMessage{
				Title:    "t",
				Deadline: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}
		})

		AfterEach(func() {
			core.TimeNow = time.Now
		})

		It("should never store two users with the same username", func() {
			_, err := todoList.CreateUser(core.UserMessage{Name: "Other", Username: "a"})
			Expect(err).To(MatchError(core.ErrUsernameTaken))
			Expect(store.Users()).To(HaveLen(1))
			Expect(store.Users()[0]).To(BeIdenticalTo(user))
		})

		Describe("CreateTodo", func() {
			It("should append a fresh todo", func() {
				todo, err := createTodo()
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(todo.ID)).To(Succeed())
				Expect(todo.Title).To(Equal("t"))
				Expect(todo.Deadline).To(Equal(msg.Deadline))
				Expect(todo.Done).To(BeFalse())
				Expect(todo.CreatedAt).To(Equal(now))
				Expect(todoList.ListTodos(uc)).To(Equal([]*models.Todo{todo}))
			})

			It("should keep insertion order", func() {
				var created []*models.Todo
				for i := range 3 {
					msg.Title = fmt.Sprintf("todo %d", i)
					todo, err := createTodo()
					Expect(err).NotTo(HaveOccurred())
					created = append(created, todo)
				}
				Expect(todoList.ListTodos(uc)).To(Equal(created))
			})

			It("should allow exactly ten todos on the free plan", func() {
				for range 10 {
					_, err := createTodo()
					Expect(err).NotTo(HaveOccurred())
				}

				_, err := createTodo()
				Expect(err).To(MatchError(core.ErrQuotaExceeded))
				Expect(user.Todos).To(HaveLen(10))
			})

			It("should lift the limit after the pro upgrade", func() {
				for range 10 {
					_, err := createTodo()
					Expect(err).NotTo(HaveOccurred())
				}

				_, err := todoList.UpgradeToPro(uc)
				Expect(err).NotTo(HaveOccurred())

				for range 5 {
					_, err := createTodo()
					Expect(err).NotTo(HaveOccurred())
				}
				Expect(user.Todos).To(HaveLen(15))
			})

			It("should honour a custom free limit", func() {
				todoList = core.NewTodoList(fakeLogger, store, 2)
				for range 2 {
					_, err := createTodo()
					Expect(err).NotTo(HaveOccurred())
				}
				_, err := createTodo()
				Expect(err).To(MatchError(core.ErrQuotaExceeded))
			})
		})

		Describe("UpgradeToPro", func() {
			It("should only upgrade once", func() {
				upgraded, err := todoList.UpgradeToPro(uc)
				Expect(err).NotTo(HaveOccurred())
				Expect(upgraded.Pro).To(BeTrue())

				_, err = todoList.UpgradeToPro(uc)
				Expect(err).To(MatchError(core.ErrAlreadyPro))
				Expect(user.Pro).To(BeTrue())
			})
		})

		Context("with an existing todo", func() {
			var (
				todo *models.Todo
				tc   core.TodoContext
			)

			BeforeEach(func() {
				var err error
				todo, err = createTodo()
				Expect(err).NotTo(HaveOccurred())
				tc, err = todoList.ResolveTodo("a", todo.ID)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should update title and deadline in place", func() {
				todo.Done = true
				deadline := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

				updated := todoList.UpdateTodo(tc, core.TodoMessage{Title: "new", Deadline: deadline})
				Expect(updated).To(BeIdenticalTo(todo))
				Expect(updated.Title).To(Equal("new"))
				Expect(updated.Deadline).To(Equal(deadline))
				Expect(updated.Done).To(BeTrue())
				Expect(updated.CreatedAt).To(Equal(now))
			})

			It("should log when a todo is marked done", func() {
				obsCore, logs := observer.New(zapcore.InfoLevel)
				todoList = core.NewTodoList(zap.New(obsCore).Sugar(), store, core.DefaultFreeLimit)

				todoList.MarkTodoDone(tc)

				entries := logs.FilterMessage("todo marked done").All()
				Expect(entries).To(HaveLen(1))
				fields := entries[0].ContextMap()
				Expect(fields["todo_id"]).To(Equal(todo.ID))
				Expect(fields["user_id"]).To(Equal(user.ID))
			})

			It("should mark the todo done idempotently", func() {
				Expect(todoList.MarkTodoDone(tc).Done).To(BeTrue())
				Expect(todoList.MarkTodoDone(tc).Done).To(BeTrue())
			})

			It("should delete exactly that todo", func() {
				other, err := createTodo()
				Expect(err).NotTo(HaveOccurred())

				Expect(todoList.DeleteTodo(tc)).To(Succeed())
				Expect(todoList.ListTodos(uc)).To(Equal([]*models.Todo{other}))

				_, err = todoList.ResolveTodo("a", todo.ID)
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})

			It("should report a todo that vanished before deletion", func() {
				Expect(todoList.DeleteTodo(tc)).To(Succeed())
				Expect(todoList.DeleteTodo(tc)).To(MatchError(core.ErrTodoNotFound))
				Expect(todoList.ListTodos(uc)).NotTo(BeNil())
				Expect(todoList.ListTodos(uc)).To(BeEmpty())
			})
		})
	})
})
