// Package billing списывает подписочную плату с мерчантов через платежный шлюз.
package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"time"

	"github.com/fsdevblog/groph-eats/internal/metrics"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/billing/client"
)

const (
	defaultServiceTimeout           = 3 * time.Second
	defaultGatewayTimeout           = 10 * time.Second
	defaultLimitPerIteration   uint = 50
	defaultBillingWorkers      uint = 5
	defaultIdleInterval             = 30 * time.Second
)

// Processor обрабатывает подлежащие оплате подписки через внешний платежный шлюз.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	billingWorkers    uint
	idleInterval      time.Duration
}

// New создает новый экземпляр биллинг-процессора.
func New(svs Servicer, gatewayBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "billing",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(gatewayBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		billingWorkers:    defaultBillingWorkers,
		idleInterval:      defaultIdleInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во подписок, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetBillingWorkers устанавливает кол-во воркеров работающих со списаниями.
func (p *Processor) SetBillingWorkers(workers uint) *Processor {
	p.billingWorkers = workers
	return p
}

// Run запускает обработку списаний в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла запрашивает через сервисный слой подписки с
//     подошедшим next_charge_at. Объем лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через
//     SetBillingWorkers), которые проводят списания через платежный шлюз.
//  3. Результаты применяются через сервисный слой одной транзакцией.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"billingWorkers":    p.billingWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if errors.Is(err, ErrNoSubscriptions) {
					// нечего списывать, ждем следующего окна.
					p.sleep(ctx, p.idleInterval)
					continue
				}
				p.l.WithError(err).Error("process error")
				p.sleep(ctx, time.Second)
			}
		}
	}
}

func (p *Processor) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// process выполняет цикл обработки: получение подписок, списание через шлюз и
// применение результатов.
// Возвращает ошибку в случае проблем или ErrNoSubscriptions если списывать нечего.
func (p *Processor) process(ctx context.Context) error {
	started := time.Now()

	candidates, candidatesErr := p.produce(ctx)
	if candidatesErr != nil {
		return fmt.Errorf("process: %w", candidatesErr)
	}

	results := p.runWorkers(ctx, candidates)
	if len(results) == 0 {
		return nil
	}

	var updateArgs = make([]service.ChargeResultArgs, 0, len(results))
	for _, result := range results {
		updateArgs = append(updateArgs, service.ChargeResultArgs{
			Error:          result.Error,
			SubscriptionID: result.Candidate.Subscription.ID,
			MerchantID:     result.Candidate.Subscription.MerchantID,
			Amount:         result.Candidate.Amount,
			GatewayRef:     result.GatewayRef,
			RequestID:      result.RequestID,
		})
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.ApplyChargeResults(reqCtx, updateArgs); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}

	metrics.BillingBatchDuration.Observe(time.Since(started).Seconds())
	return nil
}

// workerResult представляет результат работы воркера по списанию.
type workerResult struct {
	WorkerID   uint
	Candidate  *service.ChargeCandidate
	Error      error
	GatewayRef string
	RequestID  string
}

// runWorkers запускает параллельных воркеров для списаний и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in для параллельной обработки запросов.
func (p *Processor) runWorkers(ctx context.Context, candidates []service.ChargeCandidate) []workerResult {
	var taskCh = make(chan *service.ChargeCandidate, len(candidates))

	for i := range candidates {
		taskCh <- &candidates[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.billingWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(candidates))

	for i := range p.billingWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(candidates))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":         result.WorkerID,
			"subscriptionID": result.Candidate.Subscription.ID,
			"amount":         result.Candidate.Amount,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("charge subscription")
			metrics.RecordCharge(metrics.ChargeResultFailed)
		} else {
			l.WithField("gatewayRef", result.GatewayRef).Info("Success")
			metrics.RecordCharge(metrics.ChargeResultSucceeded)
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает подписки из канала, проводит списания и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *service.ChargeCandidate,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask проводит списание через платежный шлюз, в случае получения
// ошибки 429 ждет N секунд указанные в заголовке ответа. Ключ идемпотентности
// один на все повторы задачи: шлюз не спишет дважды.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *service.ChargeCandidate,
) *workerResult {
	requestID := uuid.NewString()

	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultGatewayTimeout)
		resp, err := p.client.Charge(reqCtx, client.ChargeRequest{
			MerchantRef:    fmt.Sprintf("sub-%d", task.Subscription.ID),
			Amount:         task.Amount,
			IdempotencyKey: requestID,
		})
		cancel()

		// Проверяем ошибку на TooManyRequestError для повторной попытки
		if err != nil {
			result := workerResult{
				WorkerID:  workerID,
				Candidate: task,
				RequestID: requestID,
			}
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					// После паузы делаем повторную попытку
					continue
				}
			}
			result.Error = err
			return &result
		}

		return &workerResult{
			WorkerID:   workerID,
			Candidate:  task,
			GatewayRef: resp.Ref,
			RequestID:  requestID,
		}
	}
}

// produce получает список подписок для списания.
// Возвращает ErrNoSubscriptions, если подписки отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]service.ChargeCandidate, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	candidates, candidatesErr := p.svs.DueCharges(produceCtx, p.limitPerIteration)
	if candidatesErr != nil {
		return nil, fmt.Errorf("produce: %w", candidatesErr)
	}

	if len(candidates) == 0 {
		return nil, ErrNoSubscriptions
	}
	return candidates, nil
}
