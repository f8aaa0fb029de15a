package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bakery/internal/domain"
	apperrors "bakery/internal/errors"
	"bakery/internal/gateway"
	"bakery/internal/metrics"
	"bakery/internal/receipt"
)

const (
	alertSubject       = "New order"
	defaultSendTimeout = 15 * time.Second
)

type Transport interface {
	Send(ctx context.Context, msg domain.Message) error
}

// Config holds the process-wide defaults. Options passed to Send win over
// these; when neither is set the step fails (business copy) or is skipped.
type Config struct {
	From          string
	BusinessEmail string
	SMSCarrier    string
	SMSPhone      string
	SMSUseMMS     bool
	SendTimeout   time.Duration
}

type Options struct {
	BusinessEmail string
	SMSCarrier    string
	SMSPhone      string

	// SMSEnabled nil means enabled whenever a phone and carrier resolve.
	SMSEnabled       *bool
	SMSUseMMS        *bool
	SendCustomerCopy bool
	CustomerEmail    string
}

type Channel string

const (
	ChannelBusiness Channel = "business"
	ChannelSMS      Channel = "sms"
	ChannelCustomer Channel = "customer"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

type Delivery struct {
	Channel Channel
	To      string
	Status  Status
	Reason  string
}

// Result carries the rendered receipt whatever happened to the optional
// sends, plus one Delivery per channel.
type Result struct {
	Subject    string
	HTML       string
	Text       string
	Deliveries []Delivery
}

// Failed returns the deliveries that were attempted and did not go out.
func (r *Result) Failed() []Delivery {
	var failed []Delivery
	for _, d := range r.Deliveries {
		if d.Status == StatusFailed {
			failed = append(failed, d)
		}
	}
	return failed
}

type Dispatcher struct {
	transport Transport
	gateways  gateway.Table
	cfg       Config
	logger    *zap.Logger
}

func NewDispatcher(transport Transport, gateways gateway.Table, cfg Config, logger *zap.Logger) *Dispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	return &Dispatcher{
		transport: transport,
		gateways:  gateways,
		cfg:       cfg,
		logger:    logger,
	}
}

// Send renders the receipt and delivers it. The business copy is mandatory
// and its failure is returned; the SMS alert and the customer copy run
// concurrently afterwards and only ever produce warnings.
func (d *Dispatcher) Send(ctx context.Context, order domain.OrderDetails, opts Options) (*Result, error) {
	if len(order.Items) == 0 {
		return nil, apperrors.NewValidationError("order has no items", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	rendered, err := receipt.Render(order)
	if err != nil {
		return nil, apperrors.NewInternalError("rendering receipt", err)
	}

	businessTo := firstNonEmpty(opts.BusinessEmail, d.cfg.BusinessEmail)
	if businessTo == "" {
		return nil, apperrors.NewConfigurationError("ORDER_EMAIL_TO", "no business destination email configured")
	}
	if d.cfg.From == "" {
		return nil, apperrors.NewConfigurationError("SMTP_FROM", "no sender address configured")
	}

	logger := d.logger.With(zap.String("orderNumber", order.OrderNumber))

	err = d.deliver(ctx, ChannelBusiness, domain.Message{
		From:    d.cfg.From,
		To:      businessTo,
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		logger.Error("business receipt not sent", zap.String("to", businessTo), zap.Error(err))
		return nil, apperrors.NewTransportError(string(ChannelBusiness), businessTo, err)
	}
	logger.Info("business receipt sent", zap.String("to", businessTo))

	// Optional sends report their outcome as a Delivery and never fail the call.
	optional := make([]Delivery, 2)
	var wg sync.WaitGroup
	wg.Go(func() {
		optional[0] = d.sendAlert(ctx, logger, order, rendered.Subject, opts)
	})
	wg.Go(func() {
		optional[1] = d.sendCustomerCopy(ctx, logger, rendered, businessTo, opts)
	})
	wg.Wait()

	return &Result{
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
		Deliveries: append([]Delivery{
			{Channel: ChannelBusiness, To: businessTo, Status: StatusSent},
		}, optional...),
	}, nil
}

func (d *Dispatcher) sendAlert(ctx context.Context, logger *zap.Logger, order domain.OrderDetails, subject string, opts Options) Delivery {
	carrier := firstNonEmpty(opts.SMSCarrier, d.cfg.SMSCarrier)
	digits := gateway.PhoneDigits(firstNonEmpty(opts.SMSPhone, d.cfg.SMSPhone))

	useMMS := d.cfg.SMSUseMMS
	if opts.SMSUseMMS != nil {
		useMMS = *opts.SMSUseMMS
	}

	enabled := digits != "" && carrier != ""
	if opts.SMSEnabled != nil {
		enabled = *opts.SMSEnabled
	}

	switch {
	case !enabled:
		return d.skip(ChannelSMS, "sms alert disabled")
	case carrier == "":
		return d.skip(ChannelSMS, "no sms carrier configured")
	case digits == "":
		return d.skip(ChannelSMS, "no sms phone configured")
	}

	to, ok := d.gateways.Address(carrier, digits, useMMS)
	if !ok {
		kind := "sms"
		if useMMS {
			kind = "mms"
		}
		logger.Info("no gateway for carrier, skipping alert", zap.String("carrier", carrier), zap.String("kind", kind))
		return d.skip(ChannelSMS, fmt.Sprintf("no %s gateway for carrier %q", kind, carrier))
	}

	err := d.deliver(ctx, ChannelSMS, domain.Message{
		From:    d.cfg.From,
		To:      to,
		Subject: alertSubject,
		Text:    AlertText(order, subject),
	})
	if err != nil {
		logger.Warn("sms alert not sent", zap.String("to", to), zap.Error(err))
		return Delivery{Channel: ChannelSMS, To: to, Status: StatusFailed, Reason: err.Error()}
	}
	logger.Info("sms alert sent", zap.String("to", to))
	return Delivery{Channel: ChannelSMS, To: to, Status: StatusSent}
}

func (d *Dispatcher) sendCustomerCopy(ctx context.Context, logger *zap.Logger, rendered receipt.Rendered, replyTo string, opts Options) Delivery {
	if !opts.SendCustomerCopy {
		return d.skip(ChannelCustomer, "customer copy not requested")
	}
	if opts.CustomerEmail == "" {
		return d.skip(ChannelCustomer, "no customer email")
	}

	err := d.deliver(ctx, ChannelCustomer, domain.Message{
		From:    d.cfg.From,
		To:      opts.CustomerEmail,
		ReplyTo: replyTo,
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		logger.Warn("customer receipt not sent", zap.String("to", opts.CustomerEmail), zap.Error(err))
		return Delivery{Channel: ChannelCustomer, To: opts.CustomerEmail, Status: StatusFailed, Reason: err.Error()}
	}
	logger.Info("customer receipt sent", zap.String("to", opts.CustomerEmail))
	return Delivery{Channel: ChannelCustomer, To: opts.CustomerEmail, Status: StatusSent}
}

func (d *Dispatcher) deliver(ctx context.Context, channel Channel, msg domain.Message) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	start := time.Now()
	err := d.transport.Send(sendCtx, msg)

	status := StatusSent
	if err != nil {
		status = StatusFailed
	}
	metrics.ObserveNotification(string(channel), string(status), time.Since(start))
	return err
}

func (d *Dispatcher) skip(channel Channel, reason string) Delivery {
	metrics.ObserveNotification(string(channel), string(StatusSkipped), 0)
	return Delivery{Channel: channel, Status: StatusSkipped, Reason: reason}
}

// AlertText is the three-line summary sent through the SMS gateway.
func AlertText(order domain.OrderDetails, subject string) string {
	kind := "Pick"
	if order.Fulfillment.IsDelivery() {
		kind = "Del"
	}

	return strings.Join([]string{
		subject,
		fmt.Sprintf("Total %s • %s %s %s", receipt.FormatMoney(order.Total), kind, order.Fulfillment.Date, order.Fulfillment.Time),
		fmt.Sprintf("%s %s", order.Customer.Name, order.Customer.Phone),
	}, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
