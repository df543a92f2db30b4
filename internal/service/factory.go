package service

import (
	"fmt"

	"github.com/fsdevblog/groph-eats/internal/service/psswd"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type AppServices struct {
	UserService         *UserService
	MerchantService     *MerchantService
	AddonService        *AddonService
	OrderService        *OrderService
	SubscriptionService *SubscriptionService
	InfluencerService   *InfluencerService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	merchantService, merchantServiceErr := NewMerchantService(unitOfWork)
	if merchantServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", merchantServiceErr.Error())
	}

	addonService, addonServiceErr := NewAddonService(unitOfWork)
	if addonServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", addonServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	subscriptionService, subscriptionServiceErr := NewSubscriptionService(unitOfWork)
	if subscriptionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", subscriptionServiceErr.Error())
	}

	influencerService, influencerServiceErr := NewInfluencerService(unitOfWork)
	if influencerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", influencerServiceErr.Error())
	}

	return &AppServices{
		UserService:         userService,
		MerchantService:     merchantService,
		AddonService:        addonService,
		OrderService:        orderService,
		SubscriptionService: subscriptionService,
		InfluencerService:   influencerService,
	}, nil
}
