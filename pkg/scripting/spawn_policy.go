// Package scripting 提供基于 Lua 的可编程出怪策略
package scripting

import (
	"fmt"
	"os"

	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/embedded"
	"github.com/decker502/lanedefense/pkg/systems"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// BuiltinScript 设置中使用该名称时加载内嵌的示例脚本
const BuiltinScript = "builtin"

// pickFunc 脚本必须定义的全局函数
const pickFunc = "pick_enemy"

// LuaPolicy 由 Lua 脚本决定出怪类型
//
// 脚本定义 pick_enemy(wave, spawn, roll) 并返回僵尸 id。
// roll 由模拟的随机数来源提供，同一种子下结果可复现。
// 脚本报错或返回未知 id 时记录警告并回退到 fallback 策略。
//
// 单 goroutine 使用（与模拟同一个帧循环）。
type LuaPolicy struct {
	vm       *lua.LState
	fn       *lua.LFunction
	units    *config.UnitTable
	rng      systems.Rand
	fallback systems.SpawnPolicy
	log      *zap.Logger
}

// LoadLuaPolicy 从文件加载出怪脚本
// path 为 BuiltinScript 时使用内嵌脚本
func LoadLuaPolicy(path string, units *config.UnitTable, rng systems.Rand, fallback systems.SpawnPolicy, log *zap.Logger) (*LuaPolicy, error) {
	var (
		src []byte
		err error
	)
	if path == BuiltinScript {
		src, err = embedded.ReadFile(embedded.SpawnScriptPath)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read spawn script %s: %w", path, err)
	}
	return NewLuaPolicy(string(src), path, units, rng, fallback, log)
}

// NewLuaPolicy 从源码创建出怪策略
// name 仅用于错误信息
func NewLuaPolicy(source, name string, units *config.UnitTable, rng systems.Rand, fallback systems.SpawnPolicy, log *zap.Logger) (*LuaPolicy, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load spawn script %s: %w", name, err)
	}
	fn, ok := vm.GetGlobal(pickFunc).(*lua.LFunction)
	if !ok {
		vm.Close()
		return nil, fmt.Errorf("spawn script %s: function %s not defined", name, pickFunc)
	}

	log.Debug("loaded lua spawn script", zap.String("file", name))
	return &LuaPolicy{
		vm:       vm,
		fn:       fn,
		units:    units,
		rng:      rng,
		fallback: fallback,
		log:      log,
	}, nil
}

// PickEnemy 实现 systems.SpawnPolicy
func (p *LuaPolicy) PickEnemy(wave, spawn int) *config.EnemyDef {
	roll := p.rng.Float64()

	if err := p.vm.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave), lua.LNumber(spawn), lua.LNumber(roll)); err != nil {
		p.log.Warn("lua pick_enemy error, using fallback", zap.Int("wave", wave), zap.Error(err))
		return p.fallback.PickEnemy(wave, spawn)
	}

	result := p.vm.Get(-1)
	p.vm.Pop(1)

	id, ok := result.(lua.LString)
	if !ok {
		p.log.Warn("lua pick_enemy returned non-string, using fallback",
			zap.Int("wave", wave),
			zap.String("type", result.Type().String()))
		return p.fallback.PickEnemy(wave, spawn)
	}
	def, err := p.units.EnemyByID(string(id))
	if err != nil {
		p.log.Warn("lua pick_enemy returned unknown enemy, using fallback",
			zap.Int("wave", wave),
			zap.Error(err))
		return p.fallback.PickEnemy(wave, spawn)
	}
	return def
}

// Close 关闭 Lua 虚拟机
func (p *LuaPolicy) Close() {
	p.vm.Close()
}
