package pac

import "ch32v00x-hal/mmio"

// I2C is the I2C1 controller register block (base 0x40005400).
type I2C struct {
	CTLR1  mmio.R32 // control 1: enable, start/stop, ack, reset
	CTLR2  mmio.R32 // control 2: input clock field, interrupt/DMA enables
	OADDR1 mmio.R32 // own address 1 (slave mode, unused here)
	OADDR2 mmio.R32 // own address 2 (slave mode, unused here)
	DATAR  mmio.R32 // data register, one byte per transfer
	STAR1  mmio.R32 // status 1: event and error flags
	STAR2  mmio.R32 // status 2: bus state; read after STAR1
	CKCFGR mmio.R32 // clock config: divider, fast-mode, duty
	RTR    mmio.R32 // rise time (left at reset value)
}

// CTLR1 bits.
const (
	I2C_CTLR1_PE        = 1 << 0  // peripheral enable
	I2C_CTLR1_ENPEC     = 1 << 5  // packet error checking enable
	I2C_CTLR1_ENGC      = 1 << 6  // general call enable
	I2C_CTLR1_NOSTRETCH = 1 << 7  // clock stretching disable (slave)
	I2C_CTLR1_START     = 1 << 8  // generate start condition
	I2C_CTLR1_STOP      = 1 << 9  // generate stop condition
	I2C_CTLR1_ACK       = 1 << 10 // acknowledge enable
	I2C_CTLR1_POS       = 1 << 11 // ack/PEC position
	I2C_CTLR1_PEC       = 1 << 12 // packet error checking transfer
	I2C_CTLR1_SWRST     = 1 << 15 // software reset
)

// CTLR2 bits and fields.
const (
	I2C_CTLR2_FREQ_Pos = 0 // input clock frequency, MHz
	I2C_CTLR2_FREQ_Msk = 0x3F
	I2C_CTLR2_ITERREN  = 1 << 8  // error interrupt enable
	I2C_CTLR2_ITEVTEN  = 1 << 9  // event interrupt enable
	I2C_CTLR2_ITBUFEN  = 1 << 10 // buffer interrupt enable
	I2C_CTLR2_DMAEN    = 1 << 11 // DMA requests enable
	I2C_CTLR2_LAST     = 1 << 12 // DMA last transfer
)

// STAR1 bits.
const (
	I2C_STAR1_SB     = 1 << 0  // start condition sent
	I2C_STAR1_ADDR   = 1 << 1  // address sent/matched
	I2C_STAR1_BTF    = 1 << 2  // byte transfer finished
	I2C_STAR1_ADD10  = 1 << 3  // 10-bit header sent
	I2C_STAR1_STOPF  = 1 << 4  // stop detected (slave)
	I2C_STAR1_RXNE   = 1 << 6  // receive register not empty
	I2C_STAR1_TXE    = 1 << 7  // transmit register empty
	I2C_STAR1_BERR   = 1 << 8  // bus error
	I2C_STAR1_ARLO   = 1 << 9  // arbitration lost
	I2C_STAR1_AF     = 1 << 10 // acknowledge failure
	I2C_STAR1_OVR    = 1 << 11 // overrun/underrun
	I2C_STAR1_PECERR = 1 << 12 // PEC error on reception
)

// STAR2 bits.
const (
	I2C_STAR2_MSL     = 1 << 0 // master mode selected
	I2C_STAR2_BUSY    = 1 << 1 // bus busy
	I2C_STAR2_TRA     = 1 << 2 // transmitter (vs receiver)
	I2C_STAR2_GENCALL = 1 << 4 // general call address received
	I2C_STAR2_DUALF   = 1 << 7 // dual flag (slave)
)

// CKCFGR bits and fields.
const (
	I2C_CKCFGR_CCR_Pos = 0 // clock divider
	I2C_CKCFGR_CCR_Msk = 0xFFF
	I2C_CKCFGR_DUTY    = 1 << 14 // fast-mode duty: 0 = 33%, 1 = 36%
	I2C_CKCFGR_F_S     = 1 << 15 // 0 = standard mode, 1 = fast mode
)
