package main

import (
	"context"
	"log"

	"reservation-service/config"
	bookinghandler "reservation-service/internal/module/booking/handler"
	bookingrepositories "reservation-service/internal/module/booking/repositories"
	bookingusecases "reservation-service/internal/module/booking/usecases"
	paymenthandler "reservation-service/internal/module/payment/handler"
	paymentrepositories "reservation-service/internal/module/payment/repositories"
	paymentusecases "reservation-service/internal/module/payment/usecases"
	reservationhandler "reservation-service/internal/module/reservation/handler"
	reservationrepositories "reservation-service/internal/module/reservation/repositories"
	reservationusecases "reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/http"
	"reservation-service/internal/pkg/httpclient"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/messagestream"
	"reservation-service/internal/pkg/middleware"
	"reservation-service/internal/pkg/redis"
	"reservation-service/internal/pkg/scheduler"
	"reservation-service/internal/pkg/slotstore"
	router "reservation-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, expireHandler := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// expiry task worker
	go sched.StartHandler(
		&cfg.Redis,
		[]string{scheduler.TypeExpireReservation},
		[]func(ctx context.Context, t *asynq.Task) error{expireHandler},
	)
	go sched.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, func(ctx context.Context, t *asynq.Task) error) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	rs := redis.SetupRedsync(redisClient)
	slots := slotstore.New(redisClient)
	// init logger
	logger := log_internal.Setup()
	// init http client
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient)

	ctx := context.Background()

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)
	schedulerInspector := sched.InitInspector(&cfg.Redis)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber: " + err.Error())
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher: " + err.Error())
	}

	reservationRepo := reservationrepositories.New(
		db, logger, httpClient, slots, rs,
		schedulerClient, schedulerInspector,
		&cfg.UserService, &cfg.CourtService,
	)
	reservationUsecase := reservationusecases.New(reservationRepo, logger, &cfg.Pricing, &cfg.Reservation)

	bookingRepo := bookingrepositories.New(db, logger, slots)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, reservationUsecase, &cfg.Booking)

	paymentRepo := paymentrepositories.New(db, logger, httpClient, &cfg.PayPal)
	paymentUsecase := paymentusecases.New(paymentRepo, logger, publisher, reservationUsecase, bookingUsecase)

	m := &middleware.Middleware{
		Log:  logger,
		Repo: reservationRepo,
	}

	v := validator.New()

	reservationHandler := &reservationhandler.ReservationHandler{
		Log:       logger,
		Validator: v,
		Usecase:   reservationUsecase,
	}
	paymentHandler := &paymenthandler.PaymentHandler{
		Log:       logger,
		Validator: v,
		Usecase:   paymentUsecase,
	}
	bookingHandler := &bookinghandler.BookingHandler{
		Log:       logger,
		Validator: v,
		Usecase:   bookingUsecase,
	}

	var messageRouters []*message.Router

	compensationRouter, err := messagestream.NewRouter(publisher, "payment_compensation_poisoned", "payment_compensation_handler", "payment_compensation", subscriber, paymentHandler.ConsumeCompensationQueue)
	if err != nil {
		logger.Ctx(ctx).Error("failed to create payment_compensation router: " + err.Error())
	}
	messageRouters = append(messageRouters, compensationRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, reservationHandler, paymentHandler, bookingHandler, m)

	return r, messageRouters, sched, reservationHandler.ExpireReservation
}
